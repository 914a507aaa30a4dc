package feas

import (
	"strings"
)

func FormatComment(text string) string {
	if strings.HasPrefix(text, "# ") {
		return text
	}
	return "# " + text
}

func FormatFileReference(path string) string {
	return "include(" + path + ");"
}

func FormatLanguageSystem(script, language string) string {
	return "languagesystem " + script + " " + strings.TrimSpace(language) + ";"
}

func FormatScript(name string) string {
	return "script " + name + ";"
}

func FormatLanguage(name string, includeDefault bool) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "dflt"
	}
	if !includeDefault {
		return "language " + name + " exclude_dflt;"
	}
	return "language " + name + ";"
}

func FormatClassDefinition(name string, members Member) string {
	return name + " = " + members.String() + ";"
}

func FormatMarkClassDefinition(members Member, anchor Anchor, name string) string {
	return "markClass " + members.String() + " " + anchor.String() + " " + name + ";"
}

func FormatLookupFlag(flags []string) string {
	return "lookupflag " + strings.Join(flags, " ") + ";"
}

func FormatFeatureReference(name string) string {
	return "feature " + name + ";"
}

func FormatLookupReference(name string) string {
	return "lookup " + name + ";"
}

// formatContextTarget joins backtrack, target and lookahead.
// Target members get a trailing apostrophe when marked is set or any context list is non-nil.
func formatContextTarget(target, backtrack, lookahead Sequence, marked bool) string {
	marked = marked || backtrack != nil || lookahead != nil
	var parts []string
	if len(backtrack) > 0 {
		parts = append(parts, backtrack.String())
	}
	if marked {
		members := make([]string, 0, len(target))
		for _, member := range target {
			members = append(members, member.String()+"'")
		}
		parts = append(parts, strings.Join(members, " "))
	} else {
		parts = append(parts, target.String())
	}
	if len(lookahead) > 0 {
		parts = append(parts, lookahead.String())
	}
	return strings.Join(parts, " ")
}

func formatSubstitution(sub Substitution, marked bool) string {
	target := formatContextTarget(sub.Target, sub.Backtrack, sub.Lookahead, marked)
	if sub.Replacement == nil {
		return "ignore sub " + target + ";"
	}
	if sub.Choice {
		return "sub " + target + " from " + sub.Replacement.class() + ";"
	}
	return "sub " + target + " by " + sub.Replacement.String() + ";"
}

func FormatSubstitution(sub Substitution) string {
	return formatSubstitution(sub, false)
}

func formatPosition(target, backtrack, lookahead Sequence, value *ValueRecord, enumerate, marked bool) string {
	fullTarget := formatContextTarget(target, backtrack, lookahead, marked)
	switch {
	case value == nil:
		return "ignore pos " + fullTarget + ";"
	case enumerate:
		return "enum pos " + fullTarget + " " + value.String() + ";"
	}
	return "pos " + fullTarget + " " + value.String() + ";"
}

func FormatPositionSingle(pos PositionSingle) string {
	return formatPosition(pos.Target, pos.Backtrack, pos.Lookahead, pos.Value, false, false)
}

func FormatPositionPair(pos PositionPair) string {
	return formatPosition(pos.Target, pos.Backtrack, pos.Lookahead, pos.Value, pos.Enumerate, false)
}

// FormatStylisticSetNames returns the lines of a featureNames block, entries indented by whitespace.
func FormatStylisticSetNames(whitespace string, names []NameEntry) []string {
	lines := make([]string, 0, len(names)+2)
	lines = append(lines, "featureNames {")
	for _, name := range names {
		lines = append(lines, whitespace+name.String())
	}
	lines = append(lines, "};")
	return lines
}
