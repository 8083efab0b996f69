package convert

import (
	"fmt"
	"strings"

	"github.com/matzehuels/shadercopy/pkg/errors"
)

// Issue is one soft problem met during a conversion.
type Issue struct {
	Subject string      // What was affected: a node name, "node.socket", or a link
	Code    errors.Code // UNSUPPORTED_NODE, PARTIAL_LINK or INVALID_INPUT
	Reason  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Subject, i.Reason)
}

// Report collects the soft problems of one conversion. A nil *Report is
// never returned by this package.
type Report struct {
	SkippedNodes      []Issue // Nodes left out because their type is unsupported
	DroppedLinks      []Issue // Links that could not be reproduced
	IgnoredInputs     []Issue // Input values with no matching socket or the wrong shape
	IgnoredProperties []Issue // Properties not whitelisted or with rejected values
}

// Len returns the total number of issues.
func (r *Report) Len() int {
	return len(r.SkippedNodes) + len(r.DroppedLinks) + len(r.IgnoredInputs) + len(r.IgnoredProperties)
}

// Empty reports whether the conversion was lossless.
func (r *Report) Empty() bool { return r.Len() == 0 }

// All returns every issue, grouped by kind.
func (r *Report) All() []Issue {
	out := make([]Issue, 0, r.Len())
	out = append(out, r.SkippedNodes...)
	out = append(out, r.DroppedLinks...)
	out = append(out, r.IgnoredInputs...)
	out = append(out, r.IgnoredProperties...)
	return out
}

// Summary formats the issue counts, e.g. "1 node skipped, 2 links dropped".
func (r *Report) Summary() string {
	var parts []string
	add := func(n int, one, many, verb string) {
		switch n {
		case 0:
		case 1:
			parts = append(parts, fmt.Sprintf("1 %s %s", one, verb))
		default:
			parts = append(parts, fmt.Sprintf("%d %s %s", n, many, verb))
		}
	}
	add(len(r.SkippedNodes), "node", "nodes", "skipped")
	add(len(r.DroppedLinks), "link", "links", "dropped")
	add(len(r.IgnoredInputs), "input", "inputs", "ignored")
	add(len(r.IgnoredProperties), "property", "properties", "ignored")
	if len(parts) == 0 {
		return "no issues"
	}
	return strings.Join(parts, ", ")
}

func (r *Report) skipNode(subject, reason string) Issue {
	i := Issue{Subject: subject, Code: errors.ErrCodeUnsupportedNode, Reason: reason}
	r.SkippedNodes = append(r.SkippedNodes, i)
	return i
}

func (r *Report) dropLink(subject, reason string) Issue {
	i := Issue{Subject: subject, Code: errors.ErrCodePartialLink, Reason: reason}
	r.DroppedLinks = append(r.DroppedLinks, i)
	return i
}

func (r *Report) ignoreInput(subject, reason string) Issue {
	i := Issue{Subject: subject, Code: errors.ErrCodeInvalidInput, Reason: reason}
	r.IgnoredInputs = append(r.IgnoredInputs, i)
	return i
}

func (r *Report) ignoreProperty(subject, reason string) Issue {
	i := Issue{Subject: subject, Code: errors.ErrCodeInvalidInput, Reason: reason}
	r.IgnoredProperties = append(r.IgnoredProperties, i)
	return i
}
