package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// RewriteDeclaration moves the declaration of depName in content from
// currentValue to newValue, touching only the version text.
//
// The first list item of the form `- name=version` is rewritten in place,
// keeping its indentation, quoting and trailing comment. Without such a line
// the first literal `name=currentValue` is replaced. The call is idempotent:
// content already declaring newValue is returned unchanged.
func RewriteDeclaration(content, depName, currentValue, newValue string) (string, error) {
	if depName == "" || currentValue == "" || newValue == "" {
		err := zerr.With(ErrIncompleteUpgrade, "dep_name", depName)
		err = zerr.With(err, "current_value", currentValue)
		err = zerr.With(err, "new_value", newValue)
		return "", err
	}

	line := regexp.MustCompile(`(?m)^[ \t]*-[ \t]+["']?` + regexp.QuoteMeta(depName) + `=([^\s"'#]*)`)
	if loc := line.FindStringSubmatchIndex(content); loc != nil {
		start, end := loc[2], loc[3]
		if content[start:end] == newValue {
			return content, nil
		}
		return content[:start] + newValue + content[end:], nil
	}

	if strings.Contains(content, depName+"="+newValue) {
		return content, nil
	}
	if old := depName + "=" + currentValue; strings.Contains(content, old) {
		return strings.Replace(content, old, depName+"="+newValue, 1), nil
	}

	err := zerr.With(ErrRewriteTargetNotFound, "dep_name", depName)
	err = zerr.With(err, "current_value", currentValue)
	err = zerr.With(err, "new_value", newValue)
	return "", err
}
