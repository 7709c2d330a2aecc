// Package cashbook records personal income and expenses and keeps a running
// balance. It is local-first: the ledger lives in a plain text file the user
// owns, readable and editable with any text editor.
//
// The core functionalities include:
//   - Transactions: immutable income or expense entries (kind, description,
//     amount, creation time).
//   - Ledger: the ordered list of transactions and its balance, equal at all
//     times to the sum of incomes minus the sum of expenses.
//   - Persistence: a Store holding one "<kind>,<description>,<amount>" line
//     per transaction. FileStore rewrites the whole file atomically after
//     every change.
//
// This package serves as the foundational logic for the `cbk` command-line
// tool. Rendering amounts with a currency label is left to the renderer
// package.
package cashbook
