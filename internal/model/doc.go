package model

// Package model defines domain data structures used across the app: coordinate
// system and plot type enums, their symbol/default tables, and the immutable
// plot request. Structures are designed for direct binding in the UI and for
// passing into the evaluation pipeline without shared state.
