// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/blue/emulator"
	"github.com/ezrec/blue/image"
	"github.com/ezrec/blue/internal"
	"github.com/ezrec/blue/io"
)

func blue() int {
	var binary string
	var script string
	var write string
	var input string
	var output string
	var verbose bool
	var dump bool
	var defines bool
	var list bool
	var limit int

	flag.StringVar(&binary, "b", "", ".bin image to run")
	flag.StringVar(&script, "s", "", ".star image script to run")
	flag.StringVar(&write, "w", "", "Write image to .bin file, do not execute")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "d", false, "Dump machine state on exit")
	flag.BoolVar(&defines, "defines", false, "List image script predefines")
	flag.BoolVar(&list, "l", false, "List image, do not execute")
	flag.IntVar(&limit, "n", 0, "Tick limit, 0 for none")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Printf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		return 1
	}

	if len(binary) != 0 && len(script) != 0 {
		log.Printf("%v: -b and -s are exclusive", os.Args[0])
		return 1
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Limit = limit

	if defines {
		for key, value := range internal.IterSeq2Sorted(emu.Defines()) {
			fmt.Printf("%v = %v\n", key, value)
		}
		return 0
	}

	// Load the image, or keep the built-in Hello World.
	if len(binary) != 0 {
		inf, err := os.Open(binary)
		if err != nil {
			log.Printf("%v: %v", binary, err)
			return 1
		}
		defer inf.Close()

		emu.Image, err = image.ReadBinary(inf)
		if err != nil {
			log.Printf("%v: %v", binary, err)
			return 1
		}
	}

	if len(script) != 0 {
		inf, err := os.Open(script)
		if err != nil {
			log.Printf("%v: %v", script, err)
			return 1
		}
		defer inf.Close()

		emu.Image, err = image.Script(script, inf, emu.Defines())
		if err != nil {
			log.Print(err)
			return 1
		}
	}

	if list {
		prog, err := emu.Program()
		if err != nil {
			log.Print(err)
			return 1
		}
		for line := range prog.Listing() {
			fmt.Println(line)
		}
		return 0
	}

	if len(write) != 0 {
		ouf, err := os.Create(write)
		if err != nil {
			log.Printf("%v: %v", write, err)
			return 1
		}

		err = image.WriteBinary(ouf, emu.Image)
		if err == nil {
			err = ouf.Close()
		} else {
			ouf.Close()
		}
		if err != nil {
			log.Printf("%v: %v", write, err)
			return 1
		}
		return 0
	}

	if input == "-" {
		restore := lineDiscipline(os.Stdin)
		defer restore()
		emu.Tape.Source = io.NewReaderSource(os.Stdin)
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Printf("%v: %v", input, err)
			return 1
		}
		defer inf.Close()
		emu.Tape.Source = io.NewReaderSource(inf)
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Printf("%v: %v", output, err)
			return 1
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err := emu.Reset()
	if err == nil {
		err = emu.Run()
	}

	if dump {
		pp.Fprintln(os.Stderr, emu.Cpu.State())
	}

	if err != nil {
		log.Print(err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(blue())
}
