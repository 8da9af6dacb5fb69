// Package params defines parameter containers for agents, experiments,
// and navigation algorithms, used when reading and writing experiment
// configuration files.
//
// What:
//
//   - AgentParams describes one agent model: the built-in models are
//     "base", "holonomic", "diff_drive", and "base_discrete".
//   - ExperimentParams holds per-experiment settings (timestep, goal
//     tolerance, step limit).
//   - AlgParams describes a navigation algorithm configuration; BaseAlgParams
//     is the minimal named block.
//
// Every container exposes its fields as ordered (key, value) string pairs
// via Attrs and accepts them back via SetAttr, so the file codecs in xmlio
// can encode and decode any registered model without reflection.
//
// Registry:
//
//	New agent or algorithm types register a constructor under their model
//	name (RegisterAgent / RegisterAlg, usually from an init function).
//	Decoders look the name up to instantiate the right container. The
//	built-in models are pre-registered.
//
// Why:
//
//	Experiment tooling reads agent and algorithm definitions from files
//	that name a model; the registry turns that name back into a typed
//	container without the caller enumerating every known type.
package params
