package filter

import "strconv"

// fmtSize formats a kernel size for benchmark names.
func fmtSize(s int) string {
	return "size=" + strconv.Itoa(s)
}
