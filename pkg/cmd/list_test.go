// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"bytes"
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/git-publish/mocks"
	"github.com/bborbe/git-publish/pkg/cmd"
	"github.com/bborbe/git-publish/pkg/config"
	"github.com/bborbe/git-publish/pkg/ui"
)

var _ = Describe("ListCommand", func() {
	var ctx context.Context
	var mockLoader *mocks.ConfigLoader
	var out *bytes.Buffer
	var listCommand cmd.ListCommand

	BeforeEach(func() {
		ctx = context.Background()
		mockLoader = &mocks.ConfigLoader{}
		mockLoader.LoadReturns(config.Defaults(), nil)
		out = &bytes.Buffer{}
		listCommand = cmd.NewListCommand(mockLoader, ui.NewFormatter(out, &bytes.Buffer{}))
	})

	Describe("Run", func() {
		It("lists the configured branches", func() {
			Expect(listCommand.Run(ctx, nil)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("main -> v{version}"))
			Expect(out.String()).To(ContainSubstring("develop -> d{version}"))
		})

		It("passes the config path to the loader", func() {
			Expect(listCommand.Run(ctx, []string{"-c", "other.yaml"})).To(Succeed())
			_, path := mockLoader.LoadArgsForCall(0)
			Expect(path).To(Equal("other.yaml"))
		})

		It("fails on unknown arguments", func() {
			Expect(listCommand.Run(ctx, []string{"--wat"})).NotTo(Succeed())
		})

		It("fails when the config cannot be loaded", func() {
			mockLoader.LoadReturns(config.Config{}, fmt.Errorf("no such file"))
			Expect(listCommand.Run(ctx, nil)).NotTo(Succeed())
		})
	})
})
