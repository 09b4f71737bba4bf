// Package stream fans Results out across worker goroutines over channels,
// keeping the per-item fault discipline of the core: a panic in a stage
// becomes an Err on the output channel, never a dead worker.
//
// Key constructs:
// - Pump: feed values into a channel of Ok Results
// - Run/Turnout: orchestrate workers applying a Stage (same or new type)
// - BindStage/MapStage/Validate/Tee: lift functions into Stages
// - Finally/Collect: drain the output into plain values
//
// Each item flows through its own independent chain; cancellation is via
// the supplied context only.
package stream
