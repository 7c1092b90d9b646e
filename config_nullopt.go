//go:build !fixedstr_nonullopt

package fixedstr

const noNullOptimization = false
