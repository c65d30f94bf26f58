// Package defaults holds the options parsed from env var "slidecheck".
// Setting them changes the defaults used by slidecheck.New and the cli.
// Each option is separated by a ",", key and value are separated by "=".
// For example:
//
//    slidecheck=show,trace,slow=1s
//
//    slidecheck=bin=/usr/bin/chromium,out=shots,port=9222
//
package defaults

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/utils"
)

// Version of slidecheck
const Version = "v0.1.0"

// Show disables headless mode
var Show bool

// Trace logs each step of a run and the cdp actions of rod
var Trace bool

// Slow is added to the settle delay after each slide activation
var Slow time.Duration

// Bin is the browser executable, empty means auto detect
var Bin string

// Dir is the user data dir of the launched browser, empty means a temp dir
var Dir string

// Port is the remote debugging port of the launched browser, 0 means random
var Port int

// URL of a running browser to connect to instead of launching one
var URL string

// Out is the directory the slide screenshots are written to
var Out string

func init() {
	ResetWithEnv()
}

// Reset all options to their init values.
func Reset() {
	Show = false
	Trace = false
	Slow = 0
	Bin = ""
	Dir = ""
	Port = 0
	URL = ""
	Out = "."
}

// ResetWithEnv resets all options then applies the value of env var "slidecheck".
func ResetWithEnv() {
	Reset()
	parse(os.Getenv("slidecheck"))
}

// parse options and set them globally
func parse(options string) {
	if options == "" {
		return
	}

	for _, f := range strings.Split(options, ",") {
		kv := strings.SplitN(f, "=", 2)
		rule, has := rules[kv[0]]
		if !has {
			panic("no such slidecheck option: " + kv[0])
		}
		if len(kv) == 2 {
			rule(kv[1])
		} else {
			rule("")
		}
	}
}

var rules = map[string]func(string){
	"show": func(string) {
		Show = true
	},
	"trace": func(string) {
		Trace = true
	},
	"slow": func(v string) {
		var err error
		Slow, err = time.ParseDuration(v)
		utils.E(err)
	},
	"bin": func(v string) {
		Bin = v
	},
	"dir": func(v string) {
		Dir = v
	},
	"port": func(v string) {
		var err error
		Port, err = strconv.Atoi(v)
		utils.E(err)
	},
	"url": func(v string) {
		URL = v
	},
	"out": func(v string) {
		Out = v
	},
}
