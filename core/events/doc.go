// Package events defines the typed game event contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - game_state.*
//   - round.*
//   - round_playback.*
//   - round_input.*
//
// Symbols are carried as their index (0 down, 1 left, 2 right, 3 up) so this
// package stays free of engine types. Rounds are numbered from 1.
//
// game_state events
//
//   - StateChanged (game_state.changed): the engine moved between states;
//     carries both state names.
//   - GameStarted (game_state.started): both buttons were pressed and the
//     first round is about to begin.
//   - GameOver (game_state.over): the session ended; carries the number of
//     rounds completed.
//
// round events
//
//   - RoundStarted (round.started): the sequence grew by one symbol.
//   - RoundSucceeded (round.succeeded): the whole sequence was reproduced.
//   - RoundFailed (round.failed): a gesture broke the expected prefix;
//     carries the position, the expected and the received symbol.
//
// round_playback events
//
//   - SymbolPlayed (round_playback.symbol_played): one symbol of the sequence
//     was shown and sounded, in sequence order.
//   - PlaybackEnded (round_playback.ended): the whole sequence was played.
//
// round_input events
//
//   - GuessRecorded (round_input.guess_recorded): a gesture was appended to
//     the guess.
package events
