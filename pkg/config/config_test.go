// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/git-publish/pkg/config"
)

var _ = Describe("Config", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Defaults", func() {
		It("uses origin as remote", func() {
			Expect(config.Defaults().Remote).To(Equal("origin"))
		})

		It("configures main and develop branches", func() {
			cfg := config.Defaults()
			Expect(cfg.Branches).To(HaveKeyWithValue("main", "v{version}"))
			Expect(cfg.Branches).To(HaveKeyWithValue("develop", "d{version}"))
		})

		It("disables pre-releases", func() {
			cfg := config.Defaults()
			Expect(cfg.PreRelease.Enabled).To(BeFalse())
			Expect(cfg.PreRelease.DefaultIdentifier).To(Equal("alpha"))
			Expect(cfg.PreRelease.AutoIncrement).To(BeTrue())
		})

		It("validates", func() {
			Expect(config.Defaults().Validate(ctx)).To(Succeed())
		})
	})

	Describe("Validate", func() {
		It("rejects an empty remote", func() {
			cfg := config.Defaults()
			cfg.Remote = ""
			Expect(cfg.Validate(ctx)).NotTo(Succeed())
		})

		It("rejects a branch pattern without placeholder", func() {
			cfg := config.Defaults()
			cfg.Branches = map[string]string{"main": "stable"}
			Expect(cfg.Validate(ctx)).NotTo(Succeed())
		})

		It("rejects an enabled pre-release without identifier", func() {
			cfg := config.Defaults()
			cfg.PreRelease.Enabled = true
			cfg.PreRelease.DefaultIdentifier = ""
			Expect(cfg.Validate(ctx)).NotTo(Succeed())
		})
	})

	Describe("TagPattern", func() {
		It("returns the pattern for a configured branch", func() {
			tagPattern, err := config.Defaults().TagPattern(ctx, "main")
			Expect(err).NotTo(HaveOccurred())
			Expect(tagPattern.Format("1.0.0")).To(Equal("v1.0.0"))
		})

		It("fails for an unconfigured branch", func() {
			_, err := config.Defaults().TagPattern(ctx, "feature/foo")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("BranchNames", func() {
		It("returns all configured branch names", func() {
			Expect(config.Defaults().BranchNames()).To(ConsistOf("main", "develop"))
		})
	})
})
