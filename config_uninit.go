//go:build fixedstr_uninit

package fixedstr

const allowUninitMem = true
