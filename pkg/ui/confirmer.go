// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bborbe/errors"
)

// Confirmer asks the user a yes/no question.
//
//counterfeiter:generate -o ../../mocks/confirmer.go --fake-name Confirmer . Confirmer
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// readerConfirmer implements Confirmer by prompting on a stream and
// reading one line of input. Only "y" and "yes" confirm.
type readerConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConfirmer creates a Confirmer reading from in and prompting on out.
func NewConfirmer(in io.Reader, out io.Writer) Confirmer {
	return &readerConfirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (r *readerConfirmer) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(r.out, "%s [y/N]: ", question)
	line, err := r.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(ctx, err, "read confirmation")
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
