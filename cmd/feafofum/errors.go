package main

import "errors"

var errMultipleInputs = errors.New("-out needs exactly one input")
