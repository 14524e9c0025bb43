// Package graph is a small sequential node-graph runtime for agent
// state machines. Nodes run in order, conditional edges skip nodes via
// predicates, and a checkpointer callback fires after every node so a
// resumed run can skip completed work. Sub-graphs nest with their own
// checkpoint namespace.
package graph

import (
	"context"
	"fmt"
	"log/slog"
)

// NodeFunc runs one node against the shared state.
type NodeFunc[S any] func(ctx context.Context, state *S) error

// Predicate gates a node; nil means the node always runs.
type Predicate[S any] func(state *S) bool

// Checkpointer is called after every completed node. namespace is ""
// for the root graph and the sub-graph name for nested graphs.
type Checkpointer func(ctx context.Context, namespace, node string) error

type node[S any] struct {
	name string
	run  NodeFunc[S]
	when Predicate[S]
	sub  *Graph[S]
}

// Graph is an ordered list of named nodes over a shared state type.
// Build once, run per execution.
type Graph[S any] struct {
	name  string
	nodes []node[S]
}

// New creates a graph. name becomes the checkpoint namespace when the
// graph is nested; the root graph's name is ignored.
func New[S any](name string) *Graph[S] {
	return &Graph[S]{name: name}
}

// AddNode appends an unconditional node.
func (g *Graph[S]) AddNode(name string, fn NodeFunc[S]) *Graph[S] {
	g.nodes = append(g.nodes, node[S]{name: name, run: fn})
	return g
}

// AddConditionalNode appends a node that runs only when the predicate
// holds. Skipped nodes still advance the checkpoint cursor.
func (g *Graph[S]) AddConditionalNode(name string, when Predicate[S], fn NodeFunc[S]) *Graph[S] {
	g.nodes = append(g.nodes, node[S]{name: name, run: fn, when: when})
	return g
}

// AddSubGraph nests another graph as one node. The sub-graph keeps its
// own checkpoint namespace so its nodes resume independently.
func (g *Graph[S]) AddSubGraph(sub *Graph[S], when Predicate[S]) *Graph[S] {
	g.nodes = append(g.nodes, node[S]{name: sub.name, when: when, sub: sub})
	return g
}

// RunOptions configures one execution.
type RunOptions struct {
	// Checkpoint fires after every completed node; nil disables.
	Checkpoint Checkpointer
	// ResumeCursors maps namespace to the last completed node from a
	// prior run. Nodes up to and including the cursor are skipped.
	ResumeCursors map[string]string
	Logger        *slog.Logger
}

// Run executes the graph as the root (namespace "").
func (g *Graph[S]) Run(ctx context.Context, state *S, opts RunOptions) error {
	return g.run(ctx, state, "", opts)
}

func (g *Graph[S]) run(ctx context.Context, state *S, namespace string, opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	resumeAfter := opts.ResumeCursors[namespace]
	skipping := resumeAfter != ""

	for _, n := range g.nodes {
		if err := ctx.Err(); err != nil {
			return err
		}

		if skipping {
			if n.name == resumeAfter {
				skipping = false
			}
			logger.Debug("Skipping completed node", "namespace", namespace, "node", n.name)
			continue
		}

		if n.when != nil && !n.when(state) {
			if err := g.checkpoint(ctx, opts, namespace, n.name); err != nil {
				return err
			}
			continue
		}

		if n.sub != nil {
			if err := n.sub.run(ctx, state, n.sub.name, opts); err != nil {
				return fmt.Errorf("sub-graph %s: %w", n.sub.name, err)
			}
		} else {
			if err := n.run(ctx, state); err != nil {
				return fmt.Errorf("node %s: %w", n.name, err)
			}
		}

		if err := g.checkpoint(ctx, opts, namespace, n.name); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph[S]) checkpoint(ctx context.Context, opts RunOptions, namespace, nodeName string) error {
	if opts.Checkpoint == nil {
		return nil
	}
	if err := opts.Checkpoint(ctx, namespace, nodeName); err != nil {
		return fmt.Errorf("checkpoint after node %s: %w", nodeName, err)
	}
	return nil
}
