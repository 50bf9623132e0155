package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/pageprofile"
)

// Run executes the profile command.
func (c *ProfileCmd) Run(deps *Dependencies) error {
	html, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	input := &pageprofile.ProfileInput{HTML: string(html)}

	if c.Console != "" {
		data, err := os.ReadFile(c.Console)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(data, &input.Console); err != nil {
			fmt.Fprintf(deps.Stderr, "error: invalid console file: %v\n", err)
			return pageprofile.Errorf(pageprofile.EINVALID, "invalid console file %q: %v", c.Console, err)
		}
	}

	if c.Entities != "" {
		if input.Entities, err = os.ReadFile(c.Entities); err != nil {
			return err
		}
	}

	profile, err := deps.Profiler.Profile(input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageprofile.ErrorMessage(err))
		return err
	}
	return writeJSON(deps.Stdout, profile)
}

// Run executes the blocks command.
func (c *BlocksCmd) Run(deps *Dependencies) error {
	html, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	blocks, err := deps.Blocks.DetectBlocks(string(html))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageprofile.ErrorMessage(err))
		return err
	}

	page := pageprofile.PageBlocks{URL: c.URL, Blocks: blocks}
	if page.URL == "" {
		page.URL = c.File
	}
	if c.Text {
		if len(blocks) == 0 {
			fmt.Fprintln(deps.Stdout, "No repeating blocks found.")
			return nil
		}
		fmt.Fprintln(deps.Stdout, pageprofile.FormatBlocks([]pageprofile.PageBlocks{page}))
		return nil
	}
	return writeJSON(deps.Stdout, page)
}

// Run executes the captions command.
func (c *CaptionsCmd) Run(deps *Dependencies) error {
	html, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	captions, err := deps.Captions.Captions(string(html))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageprofile.ErrorMessage(err))
		return err
	}
	if captions == nil {
		captions = []pageprofile.ImageCaption{}
	}
	return writeJSON(deps.Stdout, captions)
}
