// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

/*
Package settings owns the site-wide display configuration aggregate.

A single Settings document holds every text, color, and media customization
the storefront renders: hero section, navbar branding, footer, per-page
headings, the review video block, and the team leader testimonial block.

# Persistence Semantics

At most one Settings document exists per deployment. Reads lazily create it
with defaults. Updates are replace-style: the incoming payload is decoded
over a fresh default document and the result overwrites the stored row
verbatim. Fields the caller omits therefore revert to their schema defaults.
Callers are expected to read the full document, change the fields they care
about, and submit the whole object back. Concurrent updates are
last-writer-wins; there is no optimistic locking.
*/
package settings

// FooterLink is a single navigation entry rendered in the storefront footer.
type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// PageHeading is the heading and subheading pair shown at the top of a
// public listing page.
type PageHeading struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
}

// ReviewVideo is the embedded promotional video block on the landing page.
type ReviewVideo struct {
	Enabled  bool   `json:"enabled"`
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
}

// TeamLeader is the testimonial block featuring the storefront's curator.
type TeamLeader struct {
	Enabled  bool   `json:"enabled"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Quote    string `json:"quote"`
	PhotoURL string `json:"photoUrl"`
}

// Settings is the single site-wide display configuration aggregate.
//
// JSON field names are camelCase because the admin dashboard persists the
// document verbatim and reads it back field by field.
type Settings struct {
	HeroMainText        string `json:"heroMainText"`
	HeroSubText         string `json:"heroSubText"`
	HeroBackgroundColor string `json:"heroBackgroundColor"`
	HeroTextColor       string `json:"heroTextColor"`

	NavbarLogoURL  string `json:"navbarLogoUrl"`
	NavbarLogoText string `json:"navbarLogoText"`

	FooterCopyrightText string       `json:"footerCopyrightText"`
	FooterLinks         []FooterLink `json:"footerLinks"`
	FooterImages        []string     `json:"footerImages"`

	ShopHeading    PageHeading `json:"shopHeading"`
	BlogHeading    PageHeading `json:"blogHeading"`
	AboutHeading   PageHeading `json:"aboutHeading"`
	ContactHeading PageHeading `json:"contactHeading"`

	ReviewVideo ReviewVideo `json:"reviewVideo"`
	TeamLeader  TeamLeader  `json:"teamLeader"`
}

// Defaults returns a Settings document with every field at its schema
// default. This is both the lazily-created initial document and the base
// that incoming update payloads are decoded over.
func Defaults() Settings {
	return Settings{
		HeroMainText:        "Welcome to Velora",
		HeroSubText:         "Curated picks from trusted vendors",
		HeroBackgroundColor: "#0f172a",
		HeroTextColor:       "#f8fafc",

		NavbarLogoText: "Velora",

		FooterCopyrightText: "© Velora. All rights reserved.",
		FooterLinks:         []FooterLink{},
		FooterImages:        []string{},

		ShopHeading:    PageHeading{Heading: "Shop", Subheading: "Browse the full catalog"},
		BlogHeading:    PageHeading{Heading: "Blog", Subheading: "News and buying guides"},
		AboutHeading:   PageHeading{Heading: "About us", Subheading: "Who we are"},
		ContactHeading: PageHeading{Heading: "Contact", Subheading: "Get in touch"},

		ReviewVideo: ReviewVideo{},
		TeamLeader:  TeamLeader{},
	}
}
