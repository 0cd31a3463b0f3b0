//go:build unix

package osfile

import "golang.org/x/sys/unix"

var unixAccess = unix.Access

func isReadable(p string) bool {
	return unixAccess(p, unix.R_OK) == nil
}
