// Package nodediff compares node trees.
//
// Exactly and Matches are nil safe wrappers of the Node methods.  Diff
// reports structural changes between two trees by aligning the named
// children of each pair of nodes, and Text gives a line diff of their
// outlines.
//
// A node is reported modified when fields other than its children differ.
// Nodes implementing [Shallow] are checked with ShallowExactly; other nodes
// are reported modified whenever IsExactly fails, even if the changes to
// their children account for the difference.
package nodediff
