package mir

import (
	"github.com/ergoplasma/ergotree-go/types"
)

// Method codes, grouped by the receiver's type code. Numbering within a
// group is arbitrary but stable — it is part of this implementation's
// wire contract once assigned, exactly like the teacher's abi.MethodID
// byte values are fixed once a contract ships.
const (
	MCollSize byte = iota + 1
	MCollMap
	MCollFilter
	MCollExists
	MCollForall
)

const (
	MOptionGet byte = iota + 1
	MOptionGetOrElse
	MOptionIsDefined
)

const (
	MBoxValue byte = iota + 1
	MBoxCreationHeight
	MBoxID
	MBoxTokens
)

func requireColl(receiver types.SType) (types.SType, error) {
	if receiver.Code() != types.CColl {
		return types.SAny, &TypeMismatchError{Node: "MethodCall receiver", Expected: "Coll", Actual: receiver}
	}
	return receiver.Elem(), nil
}

func requireOption(receiver types.SType) (types.SType, error) {
	if receiver.Code() != types.COption {
		return types.SAny, &TypeMismatchError{Node: "MethodCall receiver", Expected: "Option", Actual: receiver}
	}
	return receiver.Elem(), nil
}

func requireBox(receiver types.SType) error {
	if !receiver.Equal(types.SBox) {
		return &TypeMismatchError{Node: "MethodCall receiver", Expected: "Box", Actual: receiver}
	}
	return nil
}

func init() {
	RegisterMethod(&MethodDesc{
		ID: MethodID{types.CColl, MCollSize}, Name: "size",
		ResultType: func(receiver types.SType, args []types.SType) (types.SType, error) {
			if _, err := requireColl(receiver); err != nil {
				return types.SAny, err
			}
			return types.SInt, nil
		},
	})
	RegisterMethod(&MethodDesc{
		ID: MethodID{types.CColl, MCollMap}, Name: "map",
		ResultType: func(receiver types.SType, args []types.SType) (types.SType, error) {
			if _, err := requireColl(receiver); err != nil {
				return types.SAny, err
			}
			if len(args) != 1 || args[0].Code() != types.CFunc {
				return types.SAny, &TypeMismatchError{Node: "Coll.map arg", Expected: "Func", Actual: args[0]}
			}
			return types.SColl(args[0].FuncResult()), nil
		},
	})
	RegisterMethod(&MethodDesc{
		ID: MethodID{types.CColl, MCollFilter}, Name: "filter",
		ResultType: func(receiver types.SType, args []types.SType) (types.SType, error) {
			if _, err := requireColl(receiver); err != nil {
				return types.SAny, err
			}
			if len(args) != 1 || args[0].Code() != types.CFunc || !args[0].FuncResult().Equal(types.SBoolean) {
				return types.SAny, &TypeMismatchError{Node: "Coll.filter predicate", Expected: "Func(_)=>Boolean", Actual: args[0]}
			}
			return receiver, nil
		},
	})
	RegisterMethod(&MethodDesc{
		ID: MethodID{types.CColl, MCollExists}, Name: "exists",
		ResultType: func(receiver types.SType, args []types.SType) (types.SType, error) {
			if _, err := requireColl(receiver); err != nil {
				return types.SAny, err
			}
			return types.SBoolean, nil
		},
	})
	RegisterMethod(&MethodDesc{
		ID: MethodID{types.CColl, MCollForall}, Name: "forall",
		ResultType: func(receiver types.SType, args []types.SType) (types.SType, error) {
			if _, err := requireColl(receiver); err != nil {
				return types.SAny, err
			}
			return types.SBoolean, nil
		},
	})

	RegisterMethod(&MethodDesc{
		ID: MethodID{types.COption, MOptionGet}, Name: "get",
		ResultType: func(receiver types.SType, args []types.SType) (types.SType, error) {
			return requireOption(receiver)
		},
	})
	RegisterMethod(&MethodDesc{
		ID: MethodID{types.COption, MOptionGetOrElse}, Name: "getOrElse",
		ResultType: func(receiver types.SType, args []types.SType) (types.SType, error) {
			elem, err := requireOption(receiver)
			if err != nil {
				return types.SAny, err
			}
			if len(args) != 1 || !args[0].Equal(elem) {
				return types.SAny, &TypeMismatchError{Node: "Option.getOrElse default", Expected: elem.String(), Actual: args[0]}
			}
			return elem, nil
		},
	})
	RegisterMethod(&MethodDesc{
		ID: MethodID{types.COption, MOptionIsDefined}, Name: "isDefined",
		ResultType: func(receiver types.SType, args []types.SType) (types.SType, error) {
			if _, err := requireOption(receiver); err != nil {
				return types.SAny, err
			}
			return types.SBoolean, nil
		},
	})

	RegisterMethod(&MethodDesc{
		ID: MethodID{types.CBox, MBoxValue}, Name: "value",
		ResultType: func(receiver types.SType, args []types.SType) (types.SType, error) {
			if err := requireBox(receiver); err != nil {
				return types.SAny, err
			}
			return types.SLong, nil
		},
	})
	RegisterMethod(&MethodDesc{
		ID: MethodID{types.CBox, MBoxCreationHeight}, Name: "creationHeight",
		ResultType: func(receiver types.SType, args []types.SType) (types.SType, error) {
			if err := requireBox(receiver); err != nil {
				return types.SAny, err
			}
			return types.SInt, nil
		},
	})
	RegisterMethod(&MethodDesc{
		ID: MethodID{types.CBox, MBoxID}, Name: "id",
		ResultType: func(receiver types.SType, args []types.SType) (types.SType, error) {
			if err := requireBox(receiver); err != nil {
				return types.SAny, err
			}
			return types.SByteArray, nil
		},
	})
	RegisterMethod(&MethodDesc{
		ID: MethodID{types.CBox, MBoxTokens}, Name: "tokens",
		ResultType: func(receiver types.SType, args []types.SType) (types.SType, error) {
			if err := requireBox(receiver); err != nil {
				return types.SAny, err
			}
			return types.SColl(types.STuple(types.SByteArray, types.SLong)), nil
		},
	})
}
