package lua

import (
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/rainwater/water"
)

const luaProfileTypeName = "profile"

// profileValue is the Go side of the profile userdata.
type profileValue struct {
	heights []int
	profile water.Profile
	summary water.Summary
}

// registerProfileType registers the profile type with the Lua state.
func registerProfileType(L *glua.LState) {
	mt := L.NewTypeMetatable(luaProfileTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), profileMethods))
}

func newProfile(L *glua.LState, heights []int, p water.Profile) *glua.LUserData {
	ud := L.NewUserData()
	ud.Value = &profileValue{
		heights: heights,
		profile: p,
		summary: water.Summarize(heights, p),
	}
	L.SetMetatable(ud, L.GetTypeMetatable(luaProfileTypeName))
	return ud
}

func checkProfile(L *glua.LState, n int) *profileValue {
	ud := L.CheckUserData(n)
	if v, ok := ud.Value.(*profileValue); ok {
		return v
	}
	L.ArgError(n, "profile expected")
	return nil
}

// Indexes seen from Lua are 1-based.
var profileMethods = map[string]glua.LGFunction{
	"total": func(L *glua.LState) int {
		L.Push(glua.LNumber(checkProfile(L, 1).profile.Total))
		return 1
	},
	"len": func(L *glua.LState) int {
		L.Push(glua.LNumber(len(checkProfile(L, 1).heights)))
		return 1
	},
	"height": func(L *glua.LState) int {
		v := checkProfile(L, 1)
		L.Push(glua.LNumber(indexed(L, v.heights)))
		return 1
	},
	"water": func(L *glua.LState) int {
		v := checkProfile(L, 1)
		L.Push(glua.LNumber(indexed(L, v.profile.WaterAt)))
		return 1
	},
	"heights": func(L *glua.LState) int {
		L.Push(intTable(L, checkProfile(L, 1).heights))
		return 1
	},
	"basins": func(L *glua.LState) int {
		L.Push(glua.LNumber(checkProfile(L, 1).summary.Basins))
		return 1
	},
	"fill_ratio": func(L *glua.LState) int {
		L.Push(glua.LNumber(checkProfile(L, 1).summary.FillRatio))
		return 1
	},
}

func indexed(L *glua.LState, xs []int) int {
	i := L.CheckInt(2)
	if i < 1 || i > len(xs) {
		L.ArgError(2, "index out of range")
		return 0
	}
	return xs[i-1]
}
