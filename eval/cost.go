package eval

import (
	"io"

	"github.com/ergoplasma/ergotree-go/mir"
	"gopkg.in/yaml.v3"
)

// CostTable assigns a per-node charge to each opcode, keyed by name so it
// round-trips through YAML without depending on the numeric assignment in
// mir.OpCode being stable across versions.
type CostTable map[string]uint64

// DefaultCostTable is the built-in charge schedule used when no
// configuration file is supplied. Leaves are cheap; method calls and
// collection traversals are charged more, mirroring the shape (not the
// exact figures) of a real cost table.
func DefaultCostTable() CostTable {
	return CostTable{
		mir.OpConst.String():             1,
		mir.OpHeight.String():            1,
		mir.OpIf.String():                2,
		mir.OpPlus.String():              2,
		mir.OpMinus.String():             2,
		mir.OpMultiply.String():          3,
		mir.OpDivide.String():            3,
		mir.OpMax.String():               2,
		mir.OpMin.String():               2,
		mir.OpEq.String():                2,
		mir.OpNEq.String():               2,
		mir.OpGT.String():                2,
		mir.OpGE.String():                2,
		mir.OpLT.String():                2,
		mir.OpLE.String():                2,
		mir.OpAnd.String():               1,
		mir.OpOr.String():                1,
		mir.OpColl.String():              5,
		mir.OpTuple.String():             3,
		mir.OpGetVar.String():            2,
		mir.OpMethodCall.String():        10,
		mir.OpFuncValue.String():         1,
		mir.OpApply.String():             5,
		mir.OpExtractRegisterAs.String(): 5,
		mir.OpValUse.String():            1,
		mir.OpGroupGenerator.String():    5,
		mir.OpProveDlog.String():         10,
	}
}

// LoadCostTable reads a CostTable from YAML, the same struct-of-config
// idiom the teacher's ambient tooling takes for runtime parameters.
func LoadCostTable(r io.Reader) (CostTable, error) {
	var t CostTable
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&t); err != nil {
		return nil, err
	}
	return t, nil
}

func (t CostTable) cost(op mir.OpCode) uint64 {
	if c, ok := t[op.String()]; ok {
		return c
	}
	return 1
}

// CostAccumulator charges a per-node cost before recursing into that
// node's children, failing closed once a configured ceiling is crossed
// (§4.4). A caller-supplied step budget is an independent, optional
// second cutoff (§5).
type CostAccumulator struct {
	table     CostTable
	ceiling   uint64
	spent     uint64
	steps     uint64
	stepLimit uint64 // 0 means unlimited
}

// NewCostAccumulator builds an accumulator with the given table and cost
// ceiling. stepLimit of 0 disables the step budget.
func NewCostAccumulator(table CostTable, ceiling uint64, stepLimit uint64) *CostAccumulator {
	if table == nil {
		table = DefaultCostTable()
	}
	return &CostAccumulator{table: table, ceiling: ceiling, stepLimit: stepLimit}
}

// Charge adds op's cost and enforces both the cost ceiling and the step
// budget. It must be called once per node entered, before recursing into
// that node's children — operands that are never evaluated (the
// untaken If branch, a short-circuited And/Or operand) never charge.
func (c *CostAccumulator) Charge(op mir.OpCode) error {
	c.steps++
	if c.stepLimit != 0 && c.steps > c.stepLimit {
		return &CostExceededError{Spent: c.spent, Ceiling: c.ceiling}
	}
	c.spent += c.table.cost(op)
	if c.spent > c.ceiling {
		return &CostExceededError{Spent: c.spent, Ceiling: c.ceiling}
	}
	return nil
}

// Spent returns the total cost charged so far.
func (c *CostAccumulator) Spent() uint64 { return c.spent }
