// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/git-publish/pkg/factory"
)

var _ = Describe("Factory", func() {
	var ctx context.Context
	var f *factory.Factory

	BeforeEach(func() {
		ctx = context.Background()
		f = factory.New()
	})

	Describe("Create", func() {
		It("creates the publish command", func() {
			Expect(f.CreatePublishCommand()).NotTo(BeNil())
		})

		It("creates the list command", func() {
			Expect(f.CreateListCommand()).NotTo(BeNil())
		})

		It("creates the version command", func() {
			Expect(f.CreateVersionCommand()).NotTo(BeNil())
		})

		It("creates the formatter", func() {
			Expect(f.CreateFormatter()).NotTo(BeNil())
		})
	})

	Describe("Run", func() {
		It("runs the version command", func() {
			Expect(f.Run(ctx, []string{"--version"})).To(Succeed())
		})

		It("rejects unknown publish arguments", func() {
			Expect(f.Run(ctx, []string{"--bogus"})).NotTo(Succeed())
		})

		It("rejects unknown arguments after the publish subcommand", func() {
			Expect(f.Run(ctx, []string{"publish", "--bogus"})).NotTo(Succeed())
		})
	})
})
