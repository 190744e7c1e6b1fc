/*
Package domain contains the core domain models for the ChillMCP break engine.

It defines the bounded counters (stress and boss alert), the break action
catalog, dispatch results, status reports, and the observability hooks. This
package is kept pure and free of external dependencies like I/O or transport,
following Hexagonal Architecture principles.

# Key Entities

  - Snapshot: A consistent read of both counters.
  - Action / Catalog: The break activities the engine can dispatch.
  - BreakResult: The outcome of one dispatched break.
  - StatusReport: A snapshot graded into narrative bands.
  - Hooks: Observational lifecycle callbacks (init, dispatch, penalty, drift).
*/
package domain
