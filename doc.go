/*
Package orthology classifies the evolutionary relationships between the genes
(OTUs) of a rooted gene tree.

Every internal node of the tree is labelled as a speciation, a duplication, or
ambiguous when a polytomy hides the order of events, by comparing the species
sets of its children. Those events are then turned into pairwise
relationships: orthologous, in-paralogous, out-paralogous, paralogous or
ambiguous. Species are derived from the leaf labels, which are expected to
read "<species><sep><id>" (or "<id><sep><species>").

# Usage

	eng, err := orthology.New(orthology.WithSeparator("_"))
	if err != nil {
		log.Fatal(err)
	}

	trees, err := eng.Load(ctx, strings.NewReader("((man_a,man_b),(mouse_a,mouse_b));"))
	if err != nil {
		log.Fatal(err)
	}

	table, err := eng.Classify(ctx, trees[0])
	if err != nil {
		log.Fatal(err)
	}

	rel, _ := table.Get("man_a", "mouse_b") // orthologous

Compact output, which summarises the relationships node by node instead of
pair by pair, is available through Engine.Compact for binary trees.

# Architecture

The engine follows a hexagonal layout. Tree sources implement
ports.TreeLoader (Newick via gotree by default), and completed tables can be
cached in any ports.TableStore (file, Redis, memory). Output sinks implement
ports.RecordWriter (console, CSV). The Runner wires these together for the
command line tool.
*/
package orthology
