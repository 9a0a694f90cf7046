/*
 * drd
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jelfeel/drd/compile"
	"github.com/jelfeel/drd/config"
	"github.com/jelfeel/drd/util"
)

func main() {

	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)

	flag.Usage = func() {
		fmt.Println(fmt.Sprintf("Usage of %s <command>", os.Args[0]))
		fmt.Println()
		fmt.Println(fmt.Sprintf("drd %v - JavaEL to DMN/FEEL translator", config.ProductVersion))
		fmt.Println()
		fmt.Println("Available commands:")
		fmt.Println()
		fmt.Println("    translate <expression> <out-dir>   Translate a JavaEL expression into a DMN document")
		fmt.Println()
		fmt.Println(fmt.Sprintf("Use %s <command> -help for more information about a given command.", os.Args[0]))
		fmt.Println()
	}

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	args := flag.Args()

	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var err error

	switch args[0] {
	case "translate":
		err = runTranslate(args[1:])
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

func runTranslate(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("translate requires an expression and an output directory")
	}

	expression, outDir := args[0], args[1]

	doc, err := compile.Compile(expression, util.NewStdOutLogger())
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, doc.ObjectID+".xml")
	if err := os.WriteFile(path, doc.XML, 0644); err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}
