// Package tinycompile provides the entry point for the front end of a
// native Go compiler for the tiny language. The front end turns tiny
// source files into syntax trees; semantic analysis and code
// generation consume those trees but are not implemented by this
// module.
//
// The sub-packages contain the models and tooling the front end is
// built around:
//   - ast models syntax trees: one tagged node type, a per-file root,
//     and a JSON export for tooling.
//   - reporter collects the errors and warnings a build produces.
//   - walk traverses trees on behalf of later phases.
//   - stream is the cursor the lexer and parser consume their input
//     through.
//
// # Resolvers
//
// A Resolver is how the builder locates its inputs. It can answer a
// query for a path with raw source code, which the builder hands to
// its Parser, or with an already-built syntax tree, which short
// circuits parsing. The builder only ever asks for the paths it was
// given: tiny imports name modules, not files, and binding them to
// files is semantic analysis, outside this module.
//
// # Builder
//
// A Builder accepts a list of file paths and produces one syntax tree
// per path. Only the Resolver and Parser fields are required. A
// Builder that reads sources from the file system relative to the
// current working directory looks like:
//
//	builder := tinycompile.Builder{
//	    Resolver: &tinycompile.SourceResolver{},
//	    Parser:   p,
//	}
//
// Each file is parsed independently, so the builder processes files in
// parallel, bounded by the number of CPU cores unless configured
// otherwise. By default it fails fast at the first error; supply a
// Reporter to collect errors and keep going.
package tinycompile
