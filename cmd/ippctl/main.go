/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by the project contributors
 * See LICENSE for license terms and conditions
 *
 * ippctl - a small command-line IPP client
 */

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"

	goipp "github.com/alexpevzner/ippclient"
	ippclient "github.com/alexpevzner/ippclient/client"
	"github.com/alexpevzner/ippclient/internal/ipplog"
)

var (
	app = kingpin.New("ippctl", "A small IPP client")

	ignoreTLSErrors = app.Flag("ignore-tls-errors", "Skip TLS hostname and certificate validation").Short('i').Bool()
	timeoutSeconds  = app.Flag("timeout", "Overall request timeout, in seconds").Short('t').Default("0").Int()

	statusCmd  = app.Command("status", "Query printer status")
	statusURI  = statusCmd.Arg("uri", "Printer URI").Required().String()
	statusAttr = statusCmd.Flag("attribute", "Additional requested attribute").Short('a').Strings()

	printCmd    = app.Command("print", "Submit a print job")
	printURI    = printCmd.Arg("uri", "Printer URI").Required().String()
	printFile   = printCmd.Flag("file", "Document file (default: read stdin)").Short('f').String()
	printJob    = printCmd.Flag("job-name", "Job name").Short('j').String()
	printUser   = printCmd.Flag("user", "Requesting user name").Short('u').String()
	printNoWait = printCmd.Flag("no-wait", "Do not wait for job completion feedback").Short('n').Bool()
	printAttrs  = printCmd.Flag("option", "Extra job attribute, as name=value").Short('o').Strings()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	log := ipplog.Default()
	c := &ippclient.Client{IgnoreTLSErrors: *ignoreTLSErrors, Log: log}
	if *timeoutSeconds > 0 {
		c.Timeout = time.Duration(*timeoutSeconds) * time.Second
	}

	var err error
	switch cmd {
	case statusCmd.FullCommand():
		err = runStatus(c)
	case printCmd.FullCommand():
		err = runPrint(c)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runStatus(c *ippclient.Client) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	req := ippclient.NewGetPrinterAttributesRequest(1, *statusURI, *statusAttr...)
	resp, err := c.Send(ctx, req)
	if err != nil {
		return err
	}

	group, ok := resp.AttrGroups().First(goipp.TagPrinterGroup)
	if !ok {
		return fmt.Errorf("no printer-attributes group in response")
	}

	for _, attr := range group.Attrs {
		fmt.Printf("%s: %s\n", attr.Name, attr.Values)
	}
	return nil
}

func runPrint(c *ippclient.Client) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	var doc io.Reader = os.Stdin
	if *printFile != "" {
		f, err := os.Open(*printFile)
		if err != nil {
			return err
		}
		defer f.Close()
		doc = f
	}

	extra, err := parseExtraAttrs(*printAttrs)
	if err != nil {
		return err
	}

	req := ippclient.NewPrintJobRequest(1, *printURI, doc, ippclient.PrintJobOptions{
		JobName:  *printJob,
		UserName: *printUser,
		Extra:    extra,
	})

	resp, err := c.Send(ctx, req)
	if err != nil {
		return err
	}

	status := goipp.Status(resp.Code)
	fmt.Printf("status: %s\n", status)

	group, ok := resp.AttrGroups().First(goipp.TagJobGroup)
	if ok {
		for _, attr := range group.Attrs {
			fmt.Printf("%s: %s\n", attr.Name, attr.Values)
		}
	}

	if !status.IsSuccessful() {
		return fmt.Errorf("print job failed: %s", status)
	}

	_ = *printNoWait // readiness polling after submission is out of scope; flag is accepted for CLI-surface compatibility

	return nil
}

func parseExtraAttrs(opts []string) ([]goipp.Attribute, error) {
	attrs := make([]goipp.Attribute, 0, len(opts))
	for _, opt := range opts {
		idx := strings.Index(opt, "=")
		if idx < 0 {
			return nil, fmt.Errorf("malformed -o option %q, expected name=value", opt)
		}

		name, raw := opt[:idx], opt[idx+1:]
		tag, val, err := goipp.ParseValueString(raw)
		if err != nil {
			return nil, err
		}

		attrs = append(attrs, goipp.MakeAttribute(name, tag, val))
	}
	return attrs, nil
}

func requestContext(c *ippclient.Client) (context.Context, context.CancelFunc) {
	if c.Timeout > 0 {
		return context.WithTimeout(context.Background(), c.Timeout)
	}
	return context.WithCancel(context.Background())
}
