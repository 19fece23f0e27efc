// SPDX-License-Identifier: MIT
package routepath_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/rpdiff/routepath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain builds contiguous links through the given node ids, numbered from 1.
func chain(ids ...string) []routepath.Link {
	links := make([]routepath.Link, 0, len(ids)-1)
	for i := 0; i+1 < len(ids); i++ {
		links = append(links, routepath.Link{
			StartNode:   routepath.Node{ID: ids[i]},
			EndNode:     routepath.Node{ID: ids[i+1]},
			OrderNumber: i + 1,
		})
	}

	return links
}

// TestNew_SortsByOrderNumber verifies New copies and sorts its input.
func TestNew_SortsByOrderNumber(t *testing.T) {
	links := chain("A", "B", "C", "D")
	shuffled := []routepath.Link{links[2], links[0], links[1]}

	rp := routepath.New("1001", "1", shuffled)
	require.NoError(t, rp.Validate())
	assert.Equal(t, []string{"A", "B", "C", "D"}, rp.NodeIDs())
	assert.Equal(t, 3, shuffled[0].OrderNumber, "input slice must not be reordered")
	assert.Equal(t, "1001/1", rp.Key())
}

// TestValidate_Errors covers each validation sentinel.
func TestValidate_Errors(t *testing.T) {
	broken := chain("A", "B", "C")
	broken[1].StartNode.ID = "X"

	dup := chain("A", "B", "C")
	dup[1].OrderNumber = dup[0].OrderNumber

	noID := chain("A", "B")
	noID[0].EndNode.ID = ""

	cases := []struct {
		name  string
		links []routepath.Link
		want  error
	}{
		{"empty", nil, routepath.ErrEmptyRoutePath},
		{"gap", broken, routepath.ErrNotContiguous},
		{"duplicate order", dup, routepath.ErrDuplicateOrder},
		{"empty node id", noID, routepath.ErrEmptyNodeID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rp := &routepath.RoutePath{RouteID: "r", Direction: "1", Links: tc.links}
			assert.ErrorIs(t, rp.Validate(), tc.want)
		})
	}
}

// TestNodeIDs_Empty ensures an empty route-path has no node ids.
func TestNodeIDs_Empty(t *testing.T) {
	assert.Nil(t, (&routepath.RoutePath{}).NodeIDs())
}

func TestLink_String(t *testing.T) {
	assert.Equal(t, "A→B", chain("A", "B")[0].String())
}

const yamlDoc = `
routeId: "1001"
direction: "1"
name: Kamppi - Pasila
links:
  - startNode: {id: N2}
    endNode: {id: N3}
    orderNumber: 2
  - startNode: {id: N1, type: stop, shortId: H1234}
    endNode: {id: N2}
    orderNumber: 1
`

// TestDecode_YAML checks decoding sorts links and keeps node attributes.
func TestDecode_YAML(t *testing.T) {
	rp, err := routepath.Decode(strings.NewReader(yamlDoc), routepath.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "Kamppi - Pasila", rp.Name)
	assert.Equal(t, []string{"N1", "N2", "N3"}, rp.NodeIDs())
	assert.Equal(t, routepath.NodeStop, rp.Links[0].StartNode.Type)
	assert.Equal(t, "H1234", rp.Links[0].StartNode.ShortID)
}

// TestDecode_RejectsGap ensures decoded documents are validated.
func TestDecode_RejectsGap(t *testing.T) {
	doc := `{"routeId":"1","direction":"2","links":[
	  {"startNode":{"id":"A"},"endNode":{"id":"B"},"orderNumber":1},
	  {"startNode":{"id":"C"},"endNode":{"id":"D"},"orderNumber":2}]}`
	_, err := routepath.Decode(strings.NewReader(doc), routepath.FormatJSON)
	assert.ErrorIs(t, err, routepath.ErrNotContiguous)
}

// TestEncodeDecode_JSON verifies JSON written by Encode is accepted by Decode.
func TestEncodeDecode_JSON(t *testing.T) {
	rp := routepath.New("55", "2", chain("A", "B", "C"))
	var buf bytes.Buffer
	require.NoError(t, routepath.Encode(&buf, rp, routepath.FormatJSON))

	got, err := routepath.Decode(&buf, routepath.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, rp.NodeIDs(), got.NodeIDs())
}

// TestLoad picks the decoder from the file extension.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rp.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))

	rp, err := routepath.Load(path)
	require.NoError(t, err)
	assert.Len(t, rp.Links, 2)

	_, err = routepath.Load(filepath.Join(dir, "rp.txt"))
	assert.ErrorIs(t, err, routepath.ErrUnknownFormat)

	_, err = routepath.Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
