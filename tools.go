//go:build tools

package main

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
