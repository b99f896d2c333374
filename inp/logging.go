// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"log"
	"os"

	"github.com/cpmech/gosl/io"
)

// logFile holds a handle to the errors logger file
var logFile *os.File

// InitLogFile initialises the logger
func InitLogFile(dirout, fnamekey string) (err error) {
	logFile, err = os.Create(io.Sf("%s/%s.log", dirout, fnamekey))
	if err != nil {
		return
	}
	log.SetOutput(logFile)
	return
}

// FlushLog saves the log (flushes to disk)
func FlushLog() {
	if logFile != nil {
		logFile.Close()
	}
}

// LogErrCond logs an error when condition is true and returns a stop flag
func LogErrCond(condition bool, msg string, prm ...interface{}) (stop bool) {
	if condition {
		log.Printf("ERROR: " + io.Sf(msg, prm...))
		return true
	}
	return false
}
