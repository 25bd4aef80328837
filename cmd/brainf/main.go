// Copyright 2026, Mikka Sendke

package main

import (
	"flag"
	"log"
	"os"

	"github.com/mikkasendke/brainfinterpreter/emulator"
)

func main() {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: no filename provided", os.Args[0])
	}

	path := flag.Arg(0)
	text, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("%v: file not found: %v", path, err)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Load(string(text))

	emu.Tape.Input = os.Stdin
	emu.Tape.Output = os.Stdout

	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
}
