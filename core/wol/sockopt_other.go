//go:build !unix

package wol

import "syscall"

func enableBroadcast(network, address string, c syscall.RawConn) error {
	return nil
}
