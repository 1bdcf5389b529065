package model

import (
	"errors"
	"strings"
)

// Section is the fixed set of topical categories. Every post and
// submission belongs to exactly one section for its whole lifetime.
type Section string

const (
	SectionIslamism   Section = "islamism"
	SectionModernity  Section = "modernity"
	SectionSecularism Section = "secularism"
	SectionFeminism   Section = "feminism"
)

var ErrUnknownSection = errors.New("unknown section")

// Sections returns all sections in their canonical order.
func Sections() []Section {
	return []Section{SectionIslamism, SectionModernity, SectionSecularism, SectionFeminism}
}

// ParseSection normalizes and resolves a section name.
func ParseSection(s string) (Section, error) {
	switch Section(strings.ToLower(strings.TrimSpace(s))) {
	case SectionIslamism:
		return SectionIslamism, nil
	case SectionModernity:
		return SectionModernity, nil
	case SectionSecularism:
		return SectionSecularism, nil
	case SectionFeminism:
		return SectionFeminism, nil
	}
	return "", ErrUnknownSection
}

func (s Section) String() string { return string(s) }
