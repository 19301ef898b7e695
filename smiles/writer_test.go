package smiles

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgeKey is a canonical, order-independent representation of one bond for
// isomorphism comparison: the two endpoint atoms' (symbol, aromatic) pairs
// plus the bond kind, sorted so (a,b) and (b,a) compare equal.
type edgeKey struct {
	aSymbol, bSymbol     string
	aAromatic, bAromatic bool
	kind                 BondKind
}

func edgeMultiset(adj *Adjacency) []edgeKey {
	var edges []edgeKey
	for i, atom := range adj.Atoms {
		for _, bond := range atom.Bonds {
			if bond.Target < i {
				continue // count each undirected edge once
			}
			other := adj.Atoms[bond.Target]
			e := edgeKey{atom.Symbol, other.Symbol, atom.Aromatic, other.Aromatic, bond.Kind}
			if e.aSymbol > e.bSymbol {
				e.aSymbol, e.bSymbol = e.bSymbol, e.aSymbol
				e.aAromatic, e.bAromatic = e.bAromatic, e.aAromatic
			}
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.aSymbol != b.aSymbol {
			return a.aSymbol < b.aSymbol
		}
		if a.bSymbol != b.bSymbol {
			return a.bSymbol < b.bSymbol
		}
		return a.kind < b.kind
	})
	return edges
}

func symbolMultiset(adj *Adjacency) []string {
	var symbols []string
	for _, a := range adj.Atoms {
		symbols = append(symbols, a.Symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func TestWriter_RoundTripIsIsomorphic(t *testing.T) {
	cases := []string{
		"CC(=O)N",
		"c1ccccc1",
		"[NH3+]",
		"[13C]",
		"c1cscc1",
		"C1CC1",
		"OCC",
		"c1c([37Cl])cccc1",
	}

	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			adj, err := Read(input)
			require.NoError(t, err)

			out, err := Write(adj)
			require.NoError(t, err)
			require.NotEmpty(t, out)

			adj2, err := Read(out)
			require.NoError(t, err, "round-trip output %q failed to re-parse", out)

			assert.Len(t, adj2.Atoms, len(adj.Atoms))
			if diff := cmp.Diff(symbolMultiset(adj), symbolMultiset(adj2)); diff != "" {
				t.Errorf("atom symbol multiset mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(edgeMultiset(adj), edgeMultiset(adj2), cmp.AllowUnexported(edgeKey{})); diff != "" {
				t.Errorf("edge multiset mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriter_BareOrganicAtomsStayUnbracketed(t *testing.T) {
	adj, err := Read("CCO")
	require.NoError(t, err)
	out, err := Write(adj)
	require.NoError(t, err)
	assert.NotContains(t, out, "[")
}

func TestWriter_ChargedAtomIsBracketed(t *testing.T) {
	adj, err := Read("[NH3+]")
	require.NoError(t, err)
	out, err := Write(adj)
	require.NoError(t, err)
	assert.Contains(t, out, "[")
	assert.Contains(t, out, "+")
}

func TestWriter_ProvisionalSymbolNormalizedOnWrite(t *testing.T) {
	adj, err := Read("[Uun]")
	require.NoError(t, err)
	out, err := Write(adj)
	require.NoError(t, err)
	assert.Equal(t, "[Ds]", out)
}

func TestWriter_DisconnectedComponentsJoinedByDot(t *testing.T) {
	adj, err := Read("C.O")
	require.NoError(t, err)
	out, err := Write(adj)
	require.NoError(t, err)
	assert.Contains(t, out, ".")
}

func TestWriter_RingDigitAboveNineUsesPercent(t *testing.T) {
	w := NewWriter()
	w.writeRingDigit(10)
	assert.Equal(t, "%10", w.buf.String())
}

func TestWriter_RingDigitSingleDigitHasNoPercent(t *testing.T) {
	w := NewWriter()
	w.writeRingDigit(9)
	assert.Equal(t, "9", w.buf.String())
}
