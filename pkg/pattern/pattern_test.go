// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/git-publish/pkg/pattern"
)

var _ = Describe("TagPattern", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("NewTagPattern", func() {
		It("accepts templates with the version placeholder", func() {
			tagPattern, err := pattern.NewTagPattern(ctx, "v{version}")
			Expect(err).NotTo(HaveOccurred())
			Expect(tagPattern.Template()).To(Equal("v{version}"))
		})

		It("rejects templates without the version placeholder", func() {
			_, err := pattern.NewTagPattern(ctx, "release")
			Expect(err).To(MatchError(pattern.ErrMissingPlaceholder))
		})
	})

	Describe("Format", func() {
		It("substitutes the version into the template", func() {
			tagPattern, err := pattern.NewTagPattern(ctx, "v{version}")
			Expect(err).NotTo(HaveOccurred())
			Expect(tagPattern.Format("1.2.3")).To(Equal("v1.2.3"))
		})

		It("keeps prefix and suffix around the placeholder", func() {
			tagPattern, err := pattern.NewTagPattern(ctx, "release-{version}-stable")
			Expect(err).NotTo(HaveOccurred())
			Expect(tagPattern.Format("2.0.0")).To(Equal("release-2.0.0-stable"))
		})

		It("does not validate the version shape", func() {
			tagPattern, err := pattern.NewTagPattern(ctx, "v{version}")
			Expect(err).NotTo(HaveOccurred())
			Expect(tagPattern.Format("not-a-version")).To(Equal("vnot-a-version"))
		})
	})

	Describe("Matches", func() {
		var tagPattern pattern.TagPattern

		BeforeEach(func() {
			var err error
			tagPattern, err = pattern.NewTagPattern(ctx, "v{version}")
			Expect(err).NotTo(HaveOccurred())
		})

		It("matches a plain version tag", func() {
			Expect(tagPattern.Matches(ctx, "v1.2.3")).To(BeTrue())
		})

		It("matches a pre-release tag", func() {
			Expect(tagPattern.Matches(ctx, "v1.2.3-beta.1")).To(BeTrue())
		})

		It("rejects a tag with a different prefix", func() {
			Expect(tagPattern.Matches(ctx, "release-1.2.3")).To(BeFalse())
		})

		It("rejects a tag with trailing garbage", func() {
			Expect(tagPattern.Matches(ctx, "v1.2.3extra")).To(BeFalse())
		})

		It("rejects a tag with an incomplete version", func() {
			Expect(tagPattern.Matches(ctx, "v1.2")).To(BeFalse())
		})

		It("treats template characters literally", func() {
			dotted, err := pattern.NewTagPattern(ctx, "app.{version}")
			Expect(err).NotTo(HaveOccurred())
			Expect(dotted.Matches(ctx, "app.1.0.0")).To(BeTrue())
			Expect(dotted.Matches(ctx, "appX1.0.0")).To(BeFalse())
		})
	})

	Describe("Extract", func() {
		var tagPattern pattern.TagPattern

		BeforeEach(func() {
			var err error
			tagPattern, err = pattern.NewTagPattern(ctx, "d{version}")
			Expect(err).NotTo(HaveOccurred())
		})

		It("extracts the version substring", func() {
			version, err := tagPattern.Extract(ctx, "d1.2.3")
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal("1.2.3"))
		})

		It("extracts a pre-release version", func() {
			version, err := tagPattern.Extract(ctx, "d1.2.3-rc.2")
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal("1.2.3-rc.2"))
		})

		It("fails on a non-matching tag", func() {
			_, err := tagPattern.Extract(ctx, "v1.2.3")
			Expect(err).To(MatchError(pattern.ErrInvalidPattern))
		})
	})
})
