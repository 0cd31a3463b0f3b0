//go:build !unix

package osfile

import "os"

func isReadable(p string) bool {
	f, err := os.Open(p)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
