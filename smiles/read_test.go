package smiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atomCounts(t *testing.T, adj *Adjacency) map[string]int {
	t.Helper()
	counts := make(map[string]int)
	for _, a := range adj.Atoms {
		counts[a.Symbol]++
	}
	return counts
}

func TestRead_Ethanamide(t *testing.T) {
	adj, err := Read("CC(=O)N")
	require.NoError(t, err)
	require.Len(t, adj.Atoms, 4)

	counts := atomCounts(t, adj)
	assert.Equal(t, 2, counts["C"])
	assert.Equal(t, 1, counts["O"])
	assert.Equal(t, 1, counts["N"])

	var sawDoubleBondToO bool
	for _, a := range adj.Atoms {
		for _, b := range a.Bonds {
			if b.Kind == BondDouble && adj.Atoms[b.Target].Symbol == "O" {
				sawDoubleBondToO = true
			}
		}
	}
	assert.True(t, sawDoubleBondToO, "expected a C=O double bond")
}

func TestRead_HypervalentCarbon(t *testing.T) {
	_, err := Read("C(C)C(C)(C)(C)C")
	var hv *HypervalentError
	require.ErrorAs(t, err, &hv)
	assert.Equal(t, 2, hv.AtomIndex)
}

func TestRead_UnexpectedCharacter(t *testing.T) {
	_, err := Read("OCCXC")
	var ce *CharacterError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 3, ce.Pos)
	assert.Equal(t, byte('X'), ce.Char)
}

func TestRead_AromaticIsotopeBracket(t *testing.T) {
	adj, err := Read("c1c([37Cl])cccc1")
	require.NoError(t, err)

	var found bool
	for _, a := range adj.Atoms {
		if a.Symbol == "Cl" && a.Isotope == 37 {
			found = true
		}
	}
	assert.True(t, found, "expected an isotope-37 chlorine atom")
}

func TestRead_ProvisionalElementSymbol(t *testing.T) {
	adj, err := Read("[Uun]")
	require.NoError(t, err)
	require.Len(t, adj.Atoms, 1)
	assert.Equal(t, "Ds", adj.Atoms[0].Symbol)
}

func TestRead_StrayQuotesAreIgnored(t *testing.T) {
	adj, err := Read("['Lv']")
	require.NoError(t, err)
	require.Len(t, adj.Atoms, 1)
	assert.Equal(t, "Lv", adj.Atoms[0].Symbol)
}

func TestRead_BracketSyntaxErrorCursor(t *testing.T) {
	_, err := Read("[X'Y]")
	var ce *CharacterError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, ce.Pos, "cursor should point at the original, quote-inclusive offset")
}

func TestRead_UnclosedRing(t *testing.T) {
	_, err := Read("C1CC")
	var ur *UnclosedRingError
	require.ErrorAs(t, err, &ur)
	assert.Equal(t, 1, ur.Digit)
}

func TestRead_UnclosedBranch(t *testing.T) {
	_, err := Read("C(C")
	var ub *UnclosedBranchError
	require.ErrorAs(t, err, &ub)
}

func TestReadTraced_RecordsAtomSpans(t *testing.T) {
	adj, trace, err := ReadTraced("CC")
	require.NoError(t, err)
	require.Len(t, adj.Atoms, 2)

	span, ok := trace.Atom(0)
	require.True(t, ok)
	assert.Equal(t, Span{Start: 0, End: 1}, span)

	span, ok = trace.Atom(1)
	require.True(t, ok)
	assert.Equal(t, Span{Start: 1, End: 2}, span)
}

func TestRead_WithSessionTagsTrace(t *testing.T) {
	sess := NewSession()
	_, trace, err := ReadTraced("CC", WithReadSession(sess))
	require.NoError(t, err)
	assert.Equal(t, sess.String(), trace.SessionID)
}

func TestBatchRead_CollectsAllErrors(t *testing.T) {
	results, err := BatchRead([]string{"CC", "C1CC", "CCO"})
	require.Error(t, err)
	require.Len(t, results, 3)
	assert.NotNil(t, results[0])
	assert.Nil(t, results[1])
	assert.NotNil(t, results[2])
	assert.Contains(t, err.Error(), "unclosed ring bond 1")
}
