package internal

import "encoding/json"

// Drawing is the stroke list captured by the client canvas. The core never
// interprets strokes; it only stores and hands them to the next player, so
// each stroke is carried as raw JSON.
type Drawing []json.RawMessage
