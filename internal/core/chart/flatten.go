package chart

import (
	"fmt"
	"strings"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
)

// Strategy selects the traversal used to flatten a chart forest.
type Strategy string

const (
	BreadthFirst Strategy = "bfs"
	DepthFirst   Strategy = "dfs"
)

// ParseStrategy parses "bfs" or "dfs" (case-insensitive). Empty input yields BreadthFirst.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(BreadthFirst):
		return BreadthFirst, nil
	case string(DepthFirst):
		return DepthFirst, nil
	}
	return "", fmt.Errorf("unknown flatten strategy %q", s)
}

// Duplicate records an account code that was encountered more than once.
// The first occurrence is kept.
type Duplicate struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	ParentCode string `json:"parentCode"`
	Level      int    `json:"level"`
}

// FlattenResult is the deduplicated, order-preserving seed output.
type FlattenResult struct {
	Strategy   Strategy
	Elements   []domain.AccountElement
	Duplicates []Duplicate
}

// visit carries the per-node traversal state shared by both strategies.
type visit struct {
	node   *domain.ChartNode
	parent *domain.ChartNode
	root   *domain.ChartNode
	attrs  *Classification
	level  int
}

// collector accumulates elements and enforces code uniqueness.
type collector struct {
	seen   map[string]struct{}
	result FlattenResult
}

func newCollector() *collector {
	return &collector{seen: make(map[string]struct{})}
}

func (c *collector) add(el domain.AccountElement) {
	if _, dup := c.seen[el.Code]; dup {
		c.result.Duplicates = append(c.result.Duplicates, Duplicate{
			Code:       el.Code,
			Name:       el.Name,
			ParentCode: el.ParentCode,
			Level:      el.Level,
		})
		return
	}
	c.seen[el.Code] = struct{}{}
	c.result.Elements = append(c.result.Elements, el)
}

// classifyAndBuild classifies one node and builds its seed element.
func classifyAndBuild(v visit) (domain.AccountElement, Classification) {
	attrs := Classify(v.node, v.attrs)
	return domain.AccountElement{
		Type:       attrs.Type,
		Debit:      attrs.Debit,
		Liquidity:  attrs.Liquidity,
		Code:       v.node.Code,
		Name:       v.node.EName,
		CName:      v.node.CName,
		ParentCode: v.parent.Code,
		RootCode:   v.root.Code,
		ForUser:    IsForUser(attrs.Type, v.node.HasChildren()),
		Level:      v.level,
	}, attrs
}

// firstGeneration returns the starting visits: every direct child of the forest
// root is its own parent and subtree root.
func firstGeneration(root *domain.ChartNode) []visit {
	if root == nil {
		return nil
	}
	visits := make([]visit, 0, len(root.Children))
	for _, child := range root.Children {
		if child == nil {
			continue
		}
		visits = append(visits, visit{node: child, parent: child, root: child, level: 0})
	}
	return visits
}

func childVisits(v visit, attrs Classification) []visit {
	visits := make([]visit, 0, len(v.node.Children))
	for _, child := range v.node.Children {
		if child == nil {
			continue
		}
		a := attrs
		visits = append(visits, visit{
			node:   child,
			parent: v.node,
			root:   v.root,
			attrs:  &a,
			level:  v.level + 1,
		})
	}
	return visits
}

// FlattenBFS walks the forest level by level with a FIFO work queue.
func FlattenBFS(root *domain.ChartNode) FlattenResult {
	c := newCollector()
	queue := firstGeneration(root)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		el, attrs := classifyAndBuild(v)
		c.add(el)
		queue = append(queue, childVisits(v, attrs)...)
	}
	c.result.Strategy = BreadthFirst
	return c.result
}

// FlattenDFS walks the forest in pre-order.
func FlattenDFS(root *domain.ChartNode) FlattenResult {
	c := newCollector()
	var walk func(v visit)
	walk = func(v visit) {
		el, attrs := classifyAndBuild(v)
		c.add(el)
		for _, child := range childVisits(v, attrs) {
			walk(child)
		}
	}
	for _, v := range firstGeneration(root) {
		walk(v)
	}
	c.result.Strategy = DepthFirst
	return c.result
}

// Flatten dispatches to the traversal named by s.
func Flatten(root *domain.ChartNode, s Strategy) FlattenResult {
	if s == DepthFirst {
		return FlattenDFS(root)
	}
	return FlattenBFS(root)
}
