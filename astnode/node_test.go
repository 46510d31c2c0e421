package astnode

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	sitter "github.com/smacker/go-tree-sitter"
	javasitter "github.com/smacker/go-tree-sitter/java"
)

func parseJava(t *testing.T, source string) (*Node, []byte) {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(javasitter.GetLanguage())
	src := []byte(source)
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	assert.NoError(t, err)
	return Wrap(tree.RootNode()), src
}

func TestWrap_NilIsSafe(t *testing.T) {
	var n *Node
	assert.Equal(t, "", n.Type())
	assert.False(t, n.IsNamed())
	assert.Equal(t, 0, n.Start())
	assert.Equal(t, 0, n.End())
	assert.Nil(t, n.Child(0))
	assert.Nil(t, n.Parent())
	assert.Nil(t, n.ChildByFieldName("body"))
	assert.Nil(t, Wrap(nil))
}

func TestNode_TypeAndText(t *testing.T) {
	root, src := parseJava(t, "class A { void m() { int x = 1; } }")
	assert.Equal(t, "program", root.Type())
	assert.Equal(t, string(src), root.Text(src))
}

func TestNode_ChildByFieldName(t *testing.T) {
	root, src := parseJava(t, "class A { void m() { int x = 1; } }")
	class := root.NamedChild(0)
	assert.Equal(t, "class_declaration", class.Type())
	name := class.ChildByFieldName("name")
	assert.NotNil(t, name)
	assert.Equal(t, "A", name.Text(src))
}

func TestNode_ParentRoundTrip(t *testing.T) {
	root, _ := parseJava(t, "class A { void m() { int x = 1; } }")
	class := root.NamedChild(0)
	assert.Equal(t, root.Raw(), class.Parent().Raw())
}
