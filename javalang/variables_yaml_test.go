package javalang

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

// expectedVars mirrors the yaml-fixture shape used by the teacher's own
// analyzer tests: a description, a source snippet, and the expected
// result unmarshaled from an inline yaml block rather than hand-built
// in Go.
type varsTestCase struct {
	description string
	code        string
	nodeType    string
	expectYaml  string
	expect      expectedVars
}

type expectedVars struct {
	Reads  []string `yaml:"reads,omitempty"`
	Writes []string `yaml:"writes,omitempty"`
}

func sortedNames(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}

func TestExtractVariables_YAMLFixtures(t *testing.T) {
	tests := []varsTestCase{
		{
			description: "plain assignment excludes LHS from reads",
			code:        wrapInMethod("x = 5;"),
			nodeType:    "expression_statement",
			expectYaml: `
writes: [x]
`,
		},
		{
			description: "compound assignment reads and writes",
			code:        wrapInMethod("total += delta;"),
			nodeType:    "expression_statement",
			expectYaml: `
reads: [delta, total]
writes: [total]
`,
		},
		{
			description: "declarator with initializer reads the initializer",
			code:        wrapInMethod("int b = a;"),
			nodeType:    "local_variable_declaration",
			expectYaml: `
reads: [a]
writes: [b]
`,
		},
		{
			description: "multi-variable fusion reads both sources",
			code:        wrapInMethod("int c = a + b;"),
			nodeType:    "local_variable_declaration",
			expectYaml: `
reads: [a, b]
writes: [c]
`,
		},
		{
			description: "field access only reads the base object",
			code:        wrapInMethod("x = obj.field;"),
			nodeType:    "expression_statement",
			expectYaml: `
reads: [obj]
writes: [x]
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.NoError(t, yaml.Unmarshal([]byte(tc.expectYaml), &tc.expect))

			root, src := parseProgram(t, tc.code)
			node := findNodeByType(root, tc.nodeType)
			assert.NotNil(t, node)

			reads, writes := extractVariables(node, src)
			var readNames, writeNames []string
			for _, r := range reads {
				readNames = append(readNames, r.Name)
			}
			for _, w := range writes {
				writeNames = append(writeNames, w.Name)
			}

			assert.Equal(t, sortedNames(tc.expect.Reads), sortedNames(readNames), "reads for: %s", tc.description)
			assert.Equal(t, sortedNames(tc.expect.Writes), sortedNames(writeNames), "writes for: %s", tc.description)
		})
	}
}
