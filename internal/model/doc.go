package model

// Package model defines domain data structures used across the app: the
// transcription task, its status state machine, and the closed language and
// model-size enumerations. Structures are designed for direct binding in the
// UI and explicit state transitions.
