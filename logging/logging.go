/*
github.com/imace/galaxy - A distributed in-memory cache-coherence messaging core.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/
/*
Basic logging functionality.
*/
package logging

import (
	"fmt"
	"log"

	"github.com/imace/galaxy/config"
)

func init() {
	if config.LoggingType == config.GOLOG {
		log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	}
}

// Printf logs args according to format.
func Printf(format string, args ...interface{}) {
	switch config.LoggingType {
	case config.GOLOG:
		if err := log.Output(2, fmt.Sprintf(format, args...)); err != nil {
			panic(err)
		}
	case config.FMT:
		fmt.Printf(format+"\n", args...)
	default:
		panic("Invalid logging type")
	}
}

// Print logs args.
func Print(args ...interface{}) {
	switch config.LoggingType {
	case config.GOLOG:
		if err := log.Output(2, fmt.Sprint(args...)); err != nil {
			panic(err)
		}
	case config.FMT:
		fmt.Println(args...)
	default:
		panic("Invalid logging type")
	}
}

// Errorf logs an error using format.
func Errorf(format string, args ...interface{}) {
	if config.LoggingFmtLevel < config.LOGERROR {
		return
	}
	switch config.LoggingType {
	case config.GOLOG:
		if err := log.Output(2, fmt.Sprintf("ERR: "+format, args...)); err != nil {
			panic(err)
		}
	case config.FMT:
		fmt.Printf("ERR: "+format+"\n", args...)
	default:
		panic("Invalid logging type")
	}
}

// Error logs args as an error.
func Error(args ...interface{}) {
	if config.LoggingFmtLevel < config.LOGERROR {
		return
	}
	switch config.LoggingType {
	case config.GOLOG:
		if err := log.Output(2, fmt.Sprint("ERR: ", args)); err != nil {
			panic(err)
		}
	case config.FMT:
		fmt.Println("ERR: ", args)
	default:
		panic("Invalid logging type")
	}
}

// Warningf logs a warning using format.
func Warningf(format string, args ...interface{}) {
	if config.LoggingFmtLevel < config.LOGWARNING {
		return
	}
	switch config.LoggingType {
	case config.GOLOG:
		if err := log.Output(2, fmt.Sprintf("WARN: "+format, args...)); err != nil {
			panic(err)
		}
	case config.FMT:
		fmt.Printf("WARN: "+format+"\n", args...)
	default:
		panic("Invalid logging type")
	}
}

// Warning logs args as a warning.
func Warning(args ...interface{}) {
	if config.LoggingFmtLevel < config.LOGWARNING {
		return
	}
	switch config.LoggingType {
	case config.GOLOG:
		if err := log.Output(2, fmt.Sprint("WARN: ", args)); err != nil {
			panic(err)
		}
	case config.FMT:
		fmt.Println("WARN: ", args)
	default:
		panic("Invalid logging type")
	}
}

// Infof logs an info message using format.
func Infof(format string, args ...interface{}) {
	if config.LoggingFmtLevel < config.LOGINFO {
		return
	}
	switch config.LoggingType {
	case config.GOLOG:
		if err := log.Output(2, fmt.Sprintf("INFO: "+format, args...)); err != nil {
			panic(err)
		}
	case config.FMT:
		fmt.Printf("INFO: "+format+"\n", args...)
	default:
		panic("Invalid logging type")
	}
}

// Info logs args as an info message.
func Info(args ...interface{}) {
	if config.LoggingFmtLevel < config.LOGINFO {
		return
	}
	switch config.LoggingType {
	case config.GOLOG:
		if err := log.Output(2, fmt.Sprint("INFO: ", args)); err != nil {
			panic(err)
		}
	case config.FMT:
		fmt.Println("INFO: ", args)
	default:
		panic("Invalid logging type")
	}
}
