// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/wingedpig/irclog/internal/logparse"
	"github.com/wingedpig/irclog/internal/version"
)

func convert(t *testing.T, styleName, input string, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	f, err := New(styleName, &buf, opts)
	if err != nil {
		t.Fatal(err)
	}
	p := logparse.New(strings.NewReader(input), false)
	if err := Convert(p, f, "Test", Nav{}); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestConvertSimpleTextGolden(t *testing.T) {
	got := convert(t, "simplett", "2004-02-04T09:00:00 <mg> hello\n", Options{})
	want := fmt.Sprintf(`<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.0 Transitional//EN">
<html>
<head>
	<title>Test</title>
	<meta name="generator" content="irclog2html %[1]s">
	<meta name="version" content="%[1]s">
	<meta http-equiv="Content-Type" content="text/html; charset=iso-8859-1">
	<meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body text="#000000" bgcolor="#ffffff"><tt>
&lt;mg&gt; hello<br>

<br>Generated by irclog2html %[1]s - find it at <a href="%[2]s">%[2]s</a>!
</tt></body></html>
`, version.Version, version.Homepage)
	if got != want {
		t.Errorf("full document\n got %q\nwant %q", got, want)
	}
}

func TestConvertRenameKeepsColour(t *testing.T) {
	input := strings.Join([]string{
		"2004-02-04T09:00:00 <mg> first",
		"2004-02-04T09:01:00 *** mg is now known as mgedmin",
		"2004-02-04T09:02:00 <mgedmin> second",
	}, "\n") + "\n"
	got := convert(t, "xhtmltable", input, Options{Filename: "x.html"})

	colours := regexp.MustCompile(`background: (#[0-9a-f]{6})`).FindAllStringSubmatch(got, -1)
	if len(colours) != 2 {
		t.Fatalf("found %d nick rows, want 2:\n%s", len(colours), got)
	}
	if colours[0][1] != "#407a40" || colours[1][1] != "#407a40" {
		t.Errorf("colours across rename = %s, %s; want #407a40 twice",
			colours[0][1], colours[1][1])
	}
	if !strings.Contains(got, `class="nickchange"`) {
		t.Errorf("rename line not rendered as a nickchange row:\n%s", got)
	}
}

func TestConvertDistinctNickColours(t *testing.T) {
	input := "09:00 <alice> hi\n09:01 <bob> hello\n"
	got := convert(t, "xhtmltable", input, Options{Filename: "x.html"})
	if !strings.Contains(got, "background: #407a40") {
		t.Errorf("first nick should get #407a40:\n%s", got)
	}
	if !strings.Contains(got, "background: #42427e") {
		t.Errorf("second nick should get #42427e:\n%s", got)
	}
}

func TestConvertDeterministic(t *testing.T) {
	input := strings.Join([]string{
		"09:00 <alice> one",
		"09:00 <bob> two",
		"09:00 *** bob has quit IRC",
		"09:05 * alice waves",
	}, "\n") + "\n"
	first := convert(t, "xhtmltable", input, Options{Filename: "x.html"})
	second := convert(t, "xhtmltable", input, Options{Filename: "x.html"})
	if first != second {
		t.Error("two conversions of the same log differ")
	}
}

func TestConvertReadError(t *testing.T) {
	fail := errors.New("disk gone")
	p := logparse.New(iotest.ErrReader(fail), false)
	f, err := New("xhtmltable", &bytes.Buffer{}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := Convert(p, f, "Test", Nav{}); !errors.Is(err, fail) {
		t.Errorf("Convert error = %v, want %v", err, fail)
	}
}
