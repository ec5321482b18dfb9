// pkg/sysconfig/constants.go
package sysconfig

// DefaultRules rewrites the toolchain entries that relocated interpreter
// builds bake in. Compiler driver tokens are swapped for the portable
// `cc`/`c++` spellings so extension builds pick up the target's toolchain.
var DefaultRules = Rules{
	"AR": {
		{Mode: ModePartial, From: "llvm-ar", To: "ar"},
	},
	"CC": {
		{Mode: ModePartial, From: "clang", To: "cc"},
	},
	"CXX": {
		{Mode: ModePartial, From: "clang++", To: "c++"},
	},
	"BLDSHARED": {
		{Mode: ModePartial, From: "clang", To: "cc"},
	},
	"LDSHARED": {
		{Mode: ModePartial, From: "clang", To: "cc"},
	},
	"LDCXXSHARED": {
		{Mode: ModePartial, From: "clang++", To: "c++"},
	},
	"LINKCC": {
		{Mode: ModePartial, From: "clang", To: "cc"},
	},
}
