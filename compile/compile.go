/*
 * drd
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package compile is the single public entry point for the whole JavaEL to
DMN/FEEL pipeline: lex+parse, decide between the general boolean-formula
path and the root-ternary specialization, build the decisions, lay them
out, and assemble the final document.
*/
package compile

import (
	"fmt"

	"github.com/jelfeel/drd/dmn"
	"github.com/jelfeel/drd/lang"
	"github.com/jelfeel/drd/normalize"
	"github.com/jelfeel/drd/ternary"
	"github.com/jelfeel/drd/util"
	"github.com/jelfeel/drd/zipper"
)

/*
Compile translates source, a JavaEL expression, into a complete DMN
document. A fresh CompileContext is created and discarded within this
call - nothing survives between compilations; logger may be nil, in
which case diagnostics are dropped silently.
*/
func Compile(source string, logger util.Logger) (*dmn.Document, error) {
	if logger == nil {
		logger = util.NewNullLogger()
	}

	util.NewPhaseLogger(logger, "parse").LogDebug(source)
	root, err := lang.ParseJavaEL("javael", source)
	if err != nil {
		return nil, err
	}

	ctx := dmn.NewCompileContext(source, logger)

	var rootDecision *dmn.Decision
	var decisions []*dmn.Decision

	if depth := ternary.NestingDepth(root); depth > 0 {
		util.NewPhaseLogger(logger, "build").LogDebug(
			fmt.Sprintf("ternary specialization, nesting depth %v", depth))
		rootDecision, decisions = BuildTernaryRoot(ctx, root)
	} else {
		skeleton := zipper.Zip(ctx, root)
		util.NewPhaseLogger(logger, "zip").LogDebug(lang.Print(skeleton))

		dnf := normalize.Normalize(skeleton)
		util.NewPhaseLogger(logger, "normalize").LogDebug(
			fmt.Sprintf("%v clauses", len(dnf.Clauses)))

		if rootDecision, decisions, err = BuildRootFromDNF(ctx, dnf); err != nil {
			return nil, err
		}
	}

	return dmn.Assemble(ctx, rootDecision, decisions)
}
