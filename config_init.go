//go:build !fixedstr_uninit

package fixedstr

const allowUninitMem = false
