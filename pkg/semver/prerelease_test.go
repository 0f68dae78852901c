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

var _ = Describe("PreRelease", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("ParsePreReleaseKind", func() {
		It("recognizes alpha in any case", func() {
			for _, input := range []string{"alpha", "Alpha", "ALPHA", "a", "A"} {
				kind, err := semver.ParsePreReleaseKind(ctx, input)
				Expect(err).NotTo(HaveOccurred())
				Expect(kind).To(Equal(semver.PreReleaseAlpha))
			}
		})

		It("recognizes beta in any case", func() {
			for _, input := range []string{"beta", "Beta", "b", "B"} {
				kind, err := semver.ParsePreReleaseKind(ctx, input)
				Expect(err).NotTo(HaveOccurred())
				Expect(kind).To(Equal(semver.PreReleaseBeta))
			}
		})

		It("recognizes rc in any case", func() {
			for _, input := range []string{"rc", "RC", "Rc"} {
				kind, err := semver.ParsePreReleaseKind(ctx, input)
				Expect(err).NotTo(HaveOccurred())
				Expect(kind).To(Equal(semver.PreReleaseReleaseCandidate))
			}
		})

		It("keeps custom identifiers with their original case", func() {
			kind, err := semver.ParsePreReleaseKind(ctx, "Staging")
			Expect(err).NotTo(HaveOccurred())
			Expect(kind.String()).To(Equal("Staging"))
		})

		It("accepts hyphens in custom identifiers", func() {
			kind, err := semver.ParsePreReleaseKind(ctx, "pre-release")
			Expect(err).NotTo(HaveOccurred())
			Expect(kind.String()).To(Equal("pre-release"))
		})

		It("rejects identifiers with invalid characters", func() {
			_, err := semver.ParsePreReleaseKind(ctx, "beta_1")
			Expect(err).To(MatchError(semver.ErrInvalidVersion))
		})
	})

	Describe("ParsePreRelease", func() {
		It("parses an identifier without iteration", func() {
			prerelease, err := semver.ParsePreRelease(ctx, "alpha")
			Expect(err).NotTo(HaveOccurred())
			Expect(prerelease.Kind).To(Equal(semver.PreReleaseAlpha))
			Expect(prerelease.Iteration).To(BeNil())
		})

		It("parses an identifier with iteration", func() {
			prerelease, err := semver.ParsePreRelease(ctx, "rc.3")
			Expect(err).NotTo(HaveOccurred())
			Expect(prerelease.Kind).To(Equal(semver.PreReleaseReleaseCandidate))
			Expect(*prerelease.Iteration).To(Equal(3))
		})

		It("rejects an empty value", func() {
			_, err := semver.ParsePreRelease(ctx, "")
			Expect(err).To(MatchError(semver.ErrInvalidVersion))
		})

		It("rejects a non-numeric iteration", func() {
			_, err := semver.ParsePreRelease(ctx, "beta.one")
			Expect(err).To(MatchError(semver.ErrInvalidVersion))
		})
	})

	Describe("IncrementIteration", func() {
		It("starts at 1 when no iteration exists", func() {
			prerelease := semver.PreRelease{Kind: semver.PreReleaseBeta}
			next := prerelease.IncrementIteration()
			Expect(*next.Iteration).To(Equal(1))
		})

		It("advances an existing iteration", func() {
			iteration := 4
			prerelease := semver.PreRelease{
				Kind:      semver.PreReleaseBeta,
				Iteration: &iteration,
			}
			next := prerelease.IncrementIteration()
			Expect(*next.Iteration).To(Equal(5))
		})

		It("does not modify the original", func() {
			prerelease := semver.PreRelease{Kind: semver.PreReleaseBeta}
			_ = prerelease.IncrementIteration()
			Expect(prerelease.Iteration).To(BeNil())
		})
	})

	Describe("String", func() {
		It("formats without iteration", func() {
			prerelease := semver.PreRelease{Kind: semver.PreReleaseAlpha}
			Expect(prerelease.String()).To(Equal("alpha"))
		})

		It("formats with iteration", func() {
			iteration := 2
			prerelease := semver.PreRelease{
				Kind:      semver.PreReleaseReleaseCandidate,
				Iteration: &iteration,
			}
			Expect(prerelease.String()).To(Equal("rc.2"))
		})
	})
})
