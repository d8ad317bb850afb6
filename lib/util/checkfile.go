package util

import (
	"os"

	"github.com/yggdrasil-community/peers-updater/lib/util/logger"
)

var log = logger.GetLogger()

// Check if a file exists and is readable etc
// returns false if not
func CheckFileExists(fpath string) bool {
	_, e := os.Stat(fpath)
	return e == nil
}

// CheckFileWritable reports whether the file can be opened for writing.
// The check is done up front so a long download and probe run is not
// wasted on a config file the process cannot modify anyway.
func CheckFileWritable(fpath string) error {
	f, err := os.OpenFile(fpath, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	return f.Close()
}
