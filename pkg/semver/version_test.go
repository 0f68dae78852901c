// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/git-publish/pkg/semver"
)

var _ = Describe("Version", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("ParseVersion", func() {
		It("parses a plain version", func() {
			version, err := semver.ParseVersion(ctx, "1.2.3")
			Expect(err).NotTo(HaveOccurred())
			Expect(version.Major).To(Equal(1))
			Expect(version.Minor).To(Equal(2))
			Expect(version.Patch).To(Equal(3))
			Expect(version.PreRelease).To(BeNil())
		})

		It("strips a leading v", func() {
			version, err := semver.ParseVersion(ctx, "v1.2.3")
			Expect(err).NotTo(HaveOccurred())
			Expect(version.String()).To(Equal("1.2.3"))
		})

		It("strips a leading V", func() {
			version, err := semver.ParseVersion(ctx, "V1.2.3")
			Expect(err).NotTo(HaveOccurred())
			Expect(version.String()).To(Equal("1.2.3"))
		})

		It("strips only one leading v", func() {
			_, err := semver.ParseVersion(ctx, "vv1.2.3")
			Expect(err).To(HaveOccurred())
		})

		It("parses a pre-release with iteration", func() {
			version, err := semver.ParseVersion(ctx, "1.2.3-beta.1")
			Expect(err).NotTo(HaveOccurred())
			Expect(version.PreRelease).NotTo(BeNil())
			Expect(version.PreRelease.Kind).To(Equal(semver.PreReleaseBeta))
			Expect(version.PreRelease.Iteration).NotTo(BeNil())
			Expect(*version.PreRelease.Iteration).To(Equal(1))
		})

		It("parses a pre-release without iteration", func() {
			version, err := semver.ParseVersion(ctx, "1.2.3-alpha")
			Expect(err).NotTo(HaveOccurred())
			Expect(version.PreRelease).NotTo(BeNil())
			Expect(version.PreRelease.Kind).To(Equal(semver.PreReleaseAlpha))
			Expect(version.PreRelease.Iteration).To(BeNil())
		})

		It("canonicalizes short identifiers", func() {
			version, err := semver.ParseVersion(ctx, "1.0.0-b.2")
			Expect(err).NotTo(HaveOccurred())
			Expect(version.String()).To(Equal("1.0.0-beta.2"))
		})

		It("keeps custom identifiers as written", func() {
			version, err := semver.ParseVersion(ctx, "1.0.0-Staging.5")
			Expect(err).NotTo(HaveOccurred())
			Expect(version.PreRelease.Kind.String()).To(Equal("Staging"))
			Expect(version.String()).To(Equal("1.0.0-Staging.5"))
		})

		It("rejects too few components", func() {
			_, err := semver.ParseVersion(ctx, "1.2")
			Expect(err).To(MatchError(semver.ErrInvalidVersion))
		})

		It("rejects too many components", func() {
			_, err := semver.ParseVersion(ctx, "1.2.3.4")
			Expect(err).To(MatchError(semver.ErrInvalidVersion))
		})

		It("rejects non-numeric components", func() {
			_, err := semver.ParseVersion(ctx, "1.x.3")
			Expect(err).To(MatchError(semver.ErrInvalidVersion))
		})

		It("rejects negative components", func() {
			_, err := semver.ParseVersion(ctx, "1.-2.3")
			Expect(err).To(MatchError(semver.ErrInvalidVersion))
		})

		It("rejects an empty pre-release suffix", func() {
			_, err := semver.ParseVersion(ctx, "1.2.3-")
			Expect(err).To(MatchError(semver.ErrInvalidVersion))
		})

		It("rejects a non-numeric iteration", func() {
			_, err := semver.ParseVersion(ctx, "1.2.3-beta.x")
			Expect(err).To(MatchError(semver.ErrInvalidVersion))
		})

		It("rejects an empty string", func() {
			_, err := semver.ParseVersion(ctx, "")
			Expect(err).To(MatchError(semver.ErrInvalidVersion))
		})

		It("survives a parse and format round trip", func() {
			for _, input := range []string{"0.0.0", "1.2.3", "10.20.30", "1.0.0-alpha", "2.0.0-rc.3"} {
				version, err := semver.ParseVersion(ctx, input)
				Expect(err).NotTo(HaveOccurred())
				Expect(version.String()).To(Equal(input))
			}
		})
	})

	Describe("Bump", func() {
		var policy semver.PreReleasePolicy

		BeforeEach(func() {
			policy = semver.PreReleasePolicy{}
		})

		Context("without pre-release policy", func() {
			It("bumps major and resets minor and patch", func() {
				next := semver.New(1, 2, 3).Bump(semver.MajorBump, policy)
				Expect(next.String()).To(Equal("2.0.0"))
			})

			It("bumps minor and resets patch", func() {
				next := semver.New(1, 2, 3).Bump(semver.MinorBump, policy)
				Expect(next.String()).To(Equal("1.3.0"))
			})

			It("bumps patch", func() {
				next := semver.New(1, 2, 3).Bump(semver.PatchBump, policy)
				Expect(next.String()).To(Equal("1.2.4"))
			})

			It("drops an existing pre-release on major bump", func() {
				current, err := semver.ParseVersion(ctx, "1.0.0-beta.3")
				Expect(err).NotTo(HaveOccurred())
				next := current.Bump(semver.MajorBump, policy)
				Expect(next.String()).To(Equal("2.0.0"))
			})
		})

		Context("with active pre-release policy", func() {
			BeforeEach(func() {
				policy = semver.PreReleasePolicy{
					Enabled:           true,
					DefaultIdentifier: "beta",
					AutoIncrement:     true,
				}
			})

			It("starts a pre-release on minor bump", func() {
				next := semver.New(1, 2, 3).Bump(semver.MinorBump, policy)
				Expect(next.String()).To(Equal("1.3.0-beta"))
			})

			It("increments the iteration on patch bump", func() {
				current, err := semver.ParseVersion(ctx, "1.0.0-beta.1")
				Expect(err).NotTo(HaveOccurred())
				next := current.Bump(semver.PatchBump, policy)
				Expect(next.String()).To(Equal("1.0.0-beta.2"))
			})

			It("starts the iteration at 1 when missing", func() {
				current, err := semver.ParseVersion(ctx, "1.0.0-beta")
				Expect(err).NotTo(HaveOccurred())
				next := current.Bump(semver.PatchBump, policy)
				Expect(next.String()).To(Equal("1.0.0-beta.1"))
			})

			It("resets the pre-release on minor bump", func() {
				current, err := semver.ParseVersion(ctx, "1.0.0-beta.3")
				Expect(err).NotTo(HaveOccurred())
				next := current.Bump(semver.MinorBump, policy)
				Expect(next.String()).To(Equal("1.1.0-beta"))
			})

			It("resets the pre-release on major bump", func() {
				current, err := semver.ParseVersion(ctx, "1.0.0-rc.2")
				Expect(err).NotTo(HaveOccurred())
				next := current.Bump(semver.MajorBump, policy)
				Expect(next.String()).To(Equal("2.0.0-beta"))
			})

			It("falls back to alpha for an empty default identifier", func() {
				policy.DefaultIdentifier = ""
				next := semver.New(1, 0, 0).Bump(semver.MinorBump, policy)
				Expect(next.String()).To(Equal("1.1.0-alpha"))
			})

			It("leaves the version unchanged on patch bump without auto increment", func() {
				policy.AutoIncrement = false
				current, err := semver.ParseVersion(ctx, "1.0.0-beta.1")
				Expect(err).NotTo(HaveOccurred())
				next := current.Bump(semver.PatchBump, policy)
				Expect(next.String()).To(Equal("1.0.0-beta.1"))
			})
		})
	})

	Describe("SameReleaseLine", func() {
		It("ignores pre-release differences", func() {
			a, err := semver.ParseVersion(ctx, "1.2.3-alpha")
			Expect(err).NotTo(HaveOccurred())
			b := semver.New(1, 2, 3)
			Expect(a.SameReleaseLine(b)).To(BeTrue())
		})

		It("separates different patch versions", func() {
			Expect(semver.New(1, 2, 3).SameReleaseLine(semver.New(1, 2, 4))).To(BeFalse())
		})
	})

	Describe("Less", func() {
		It("orders by major first", func() {
			Expect(semver.New(1, 9, 9).Less(semver.New(2, 0, 0))).To(BeTrue())
		})

		It("orders by minor second", func() {
			Expect(semver.New(1, 2, 9).Less(semver.New(1, 3, 0))).To(BeTrue())
		})

		It("orders by patch last", func() {
			Expect(semver.New(1, 2, 3).Less(semver.New(1, 2, 4))).To(BeTrue())
		})

		It("is false for equal release lines", func() {
			Expect(semver.New(1, 2, 3).Less(semver.New(1, 2, 3))).To(BeFalse())
		})
	})
})
