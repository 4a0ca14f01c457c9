// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

//go:generate mockgen -destination=mock_metrics_test.go -package $GOPACKAGE . Metrics

// Metrics is the metrics interface to use for the tree(s).
type Metrics interface {
	NodesAdd(n uint32)
	NodesSub(n uint32)
}

type noopMetrics struct{}

func (noopMetrics) NodesAdd(n uint32) {}
func (noopMetrics) NodesSub(n uint32) {}
