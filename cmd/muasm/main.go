package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/mucpu/muasm/asm"
	"github.com/mucpu/muasm/asm/format"
)

func main() {
	listingCmd := &cli.Command{
		Name:        "listing",
		Description: "assemble files and print the listing",
		Action:      listingAct,
		Args:        cli.Args{},
	}

	codeCmd := &cli.Command{
		Name:        "code",
		Description: "assemble files and print the machine code",
		Action:      codeAct,
		Args:        cli.Args{},
	}

	labelsCmd := &cli.Command{
		Name:        "labels",
		Description: "assemble files and print the label table",
		Action:      labelsAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "muasm",
		Description: "muasm is an assembler for the MUCPU 2017 toy cpu",
		Commands: []*cli.Command{
			listingCmd,
			codeCmd,
			labelsCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func listingAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		p, err := asm.AssembleFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "assemble %v", a)
		}

		fmt.Printf("\nLISTING OF %v\n\n", a)
		os.Stdout.Write(format.Listing(nil, p))
	}

	return nil
}

func codeAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		p, err := asm.AssembleFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "assemble %v", a)
		}

		os.Stdout.Write(format.MachineCode(nil, p))
	}

	return nil
}

func labelsAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		p, err := asm.AssembleFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "assemble %v", a)
		}

		os.Stdout.Write(format.Labels(nil, p))
	}

	return nil
}
