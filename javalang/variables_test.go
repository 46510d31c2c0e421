package javalang

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	javasitter "github.com/smacker/go-tree-sitter/java"
	"github.com/stretchr/testify/assert"

	"github.com/viant/adgraph/astnode"
)

func wrapInMethod(body string) string {
	return "class A { void m() { " + body + " } }"
}

func parseProgram(t *testing.T, source string) (*astnode.Node, []byte) {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(javasitter.GetLanguage())
	src := []byte(source)
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	assert.NoError(t, err)
	return astnode.Wrap(tree.RootNode()), src
}

func TestExtractVariables_PlainAssignmentExcludesLHSFromReads(t *testing.T) {
	source := wrapInMethod("x = 5;")
	root, src := parseProgram(t, source)
	stmt := findNodeByType(root, "expression_statement")
	assert.NotNil(t, stmt)

	reads, writes := extractVariables(stmt, src)
	assert.Len(t, writes, 1)
	assert.Equal(t, "x", writes[0].Name)
	assert.Empty(t, reads)
}

func TestExtractVariables_CompoundAssignmentReadsAndWrites(t *testing.T) {
	source := wrapInMethod("x += 1;")
	root, src := parseProgram(t, source)
	stmt := findNodeByType(root, "expression_statement")
	assert.NotNil(t, stmt)

	reads, writes := extractVariables(stmt, src)
	assert.Len(t, writes, 1)
	assert.Equal(t, "x", writes[0].Name)
	assert.Len(t, reads, 1)
	assert.Equal(t, "x", reads[0].Name)
}

func TestExtractVariables_VariableDeclaratorWithInitializer(t *testing.T) {
	source := wrapInMethod("int b = a;")
	root, src := parseProgram(t, source)
	decl := findNodeByType(root, "local_variable_declaration")
	assert.NotNil(t, decl)

	reads, writes := extractVariables(decl, src)
	assert.Len(t, writes, 1)
	assert.Equal(t, "b", writes[0].Name)
	assert.Equal(t, "int", writes[0].Type)
	assert.Len(t, reads, 1)
	assert.Equal(t, "a", reads[0].Name)
}

func TestExtractVariables_DeclarationWithoutInitializerHasNoReads(t *testing.T) {
	source := wrapInMethod("int a;")
	root, src := parseProgram(t, source)
	decl := findNodeByType(root, "local_variable_declaration")
	assert.NotNil(t, decl)

	reads, writes := extractVariables(decl, src)
	assert.Len(t, writes, 1)
	assert.Empty(t, reads)
}

func TestExtractVariables_UpdateExpressionIsReadAndWrite(t *testing.T) {
	source := wrapInMethod("i++;")
	root, src := parseProgram(t, source)
	stmt := findNodeByType(root, "expression_statement")
	assert.NotNil(t, stmt)

	reads, writes := extractVariables(stmt, src)
	assert.Len(t, writes, 1)
	assert.Equal(t, "i", writes[0].Name)
	assert.Len(t, reads, 1)
	assert.Equal(t, "i", reads[0].Name)
}

func TestExtractVariables_FieldAccessOnlyReadsBase(t *testing.T) {
	source := wrapInMethod("x = obj.field;")
	root, src := parseProgram(t, source)
	stmt := findNodeByType(root, "expression_statement")
	assert.NotNil(t, stmt)

	reads, _ := extractVariables(stmt, src)
	assert.Len(t, reads, 1)
	assert.Equal(t, "obj", reads[0].Name)
}

func TestExtractVariables_MethodInvocationSkipsMethodName(t *testing.T) {
	source := wrapInMethod("obj.doThing(y);")
	root, src := parseProgram(t, source)
	stmt := findNodeByType(root, "expression_statement")
	assert.NotNil(t, stmt)

	reads, _ := extractVariables(stmt, src)
	var names []string
	for _, r := range reads {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "obj")
	assert.Contains(t, names, "y")
	assert.NotContains(t, names, "doThing")
}

func TestExtractVariables_EnhancedForBindingIsWriteValueIsRead(t *testing.T) {
	source := wrapInMethod("for (String s : items) { }")
	root, src := parseProgram(t, source)
	forNode := findNodeByType(root, "enhanced_for_statement")
	assert.NotNil(t, forNode)

	reads, writes := extractVariables(forNode, src)
	assert.Len(t, writes, 1)
	assert.Equal(t, "s", writes[0].Name)
	assert.Equal(t, "String", writes[0].Type)
	assert.Len(t, reads, 1)
	assert.Equal(t, "items", reads[0].Name)
}
