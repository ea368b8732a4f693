// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package protocol defines the versioned wire schema spoken between a
// marketplace client and the server, and the codec that frames it.
//
// Each connection carries a persistent, ordered stream of newline-delimited
// JSON records. A request is one tagged record naming a command plus the
// typed fields that command uses; every request yields exactly one response
// record before the next request may be sent. The schema is explicit and
// versioned so the wire format stays decoupled from the server's internal
// representation.
package protocol

import "github.com/MKhiriev/go-marketplace/models"

// SchemaVersion identifies the wire schema carried in every frame. A request
// with a different version terminates the session like any other decode
// failure.
const SchemaVersion = 1

// Command is the tag naming the operation a request carries.
type Command string

// The command set. Tags marked with an auth precondition in the server's
// dispatch table are rejected with CodeAuthRequired on anonymous sessions.
const (
	CmdRegister        Command = "REGISTER"
	CmdLogin           Command = "LOGIN"
	CmdLogout          Command = "LOGOUT"
	CmdAddItem         Command = "ADD_ITEM"
	CmdSearchItems     Command = "SEARCH_ITEMS"
	CmdBuyItem         Command = "BUY_ITEM"
	CmdGetUserItems    Command = "GET_USER_ITEMS"
	CmdSendMessage     Command = "SEND_MESSAGE"
	CmdGetMessages     Command = "GET_MESSAGES"
	CmdGetTransactions Command = "GET_TRANSACTIONS"
	CmdGetBalance      Command = "GET_BALANCE"
	CmdDeleteItem      Command = "DELETE_ITEM"
	CmdDeleteAccount   Command = "DELETE_ACCOUNT"
	CmdExit            Command = "EXIT"
)

// Machine-readable failure kinds carried in [models.Result].Code.
const (
	CodeAuthRequired       = "AUTH_REQUIRED"
	CodeUnknownCommand     = "UNKNOWN_COMMAND"
	CodeUsernameTaken      = "USERNAME_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeBuyerNotFound      = "BUYER_NOT_FOUND"
	CodeSellerNotFound     = "SELLER_NOT_FOUND"
	CodeItemNotFound       = "ITEM_NOT_FOUND"
	CodeItemAlreadySold    = "ITEM_ALREADY_SOLD"
	CodeSellerMismatch     = "SELLER_MISMATCH"
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodeRecipientNotFound  = "RECIPIENT_NOT_FOUND"
	CodeNotOwner           = "NOT_OWNER"
	CodeSelfPurchase       = "SELF_PURCHASE"
)

// Request is one command frame. Cmd selects which of the optional fields are
// meaningful; unused fields are omitted on the wire.
type Request struct {
	// V is the schema version, always [SchemaVersion].
	V int `json:"v"`

	// Cmd names the operation.
	Cmd Command `json:"cmd"`

	// Username and Password are used by REGISTER and LOGIN.
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	// Title, Description, and Price are used by ADD_ITEM.
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`

	// Query is used by SEARCH_ITEMS; the empty string matches everything.
	Query string `json:"query,omitempty"`

	// ItemID is used by BUY_ITEM and DELETE_ITEM, and optionally by
	// SEND_MESSAGE to relate the message to a listing (zero = general).
	ItemID int64 `json:"item_id,omitempty"`

	// Recipient and Content are used by SEND_MESSAGE.
	Recipient string `json:"recipient,omitempty"`
	Content   string `json:"content,omitempty"`
}

// ResponseKind discriminates the payload shape carried by a [Response].
type ResponseKind string

const (
	// KindResult carries the uniform success/failure envelope.
	KindResult ResponseKind = "result"
	// KindItems carries a listing slice (SEARCH_ITEMS, GET_USER_ITEMS).
	KindItems ResponseKind = "items"
	// KindMessages carries a message slice (GET_MESSAGES).
	KindMessages ResponseKind = "messages"
	// KindTransactions carries a transaction slice (GET_TRANSACTIONS).
	KindTransactions ResponseKind = "transactions"
	// KindBalance carries the balance scalar (GET_BALANCE); -1 stands for
	// "not authenticated".
	KindBalance ResponseKind = "balance"
)

// Response is the single reply frame produced for each request. Exactly one
// payload field is populated, selected by Kind.
type Response struct {
	// V is the schema version, always [SchemaVersion].
	V int `json:"v"`

	// Kind selects the populated payload field.
	Kind ResponseKind `json:"kind"`

	Result       *models.Result       `json:"result,omitempty"`
	Items        []models.Item        `json:"items,omitempty"`
	Messages     []models.Message     `json:"messages,omitempty"`
	Transactions []models.Transaction `json:"transactions,omitempty"`
	Balance      float64              `json:"balance"`
}

// ResultResponse wraps a result envelope in a response frame.
func ResultResponse(result models.Result) *Response {
	return &Response{V: SchemaVersion, Kind: KindResult, Result: &result}
}

// ItemsResponse wraps a listing slice in a response frame.
func ItemsResponse(items []models.Item) *Response {
	return &Response{V: SchemaVersion, Kind: KindItems, Items: items}
}

// MessagesResponse wraps a message slice in a response frame.
func MessagesResponse(messages []models.Message) *Response {
	return &Response{V: SchemaVersion, Kind: KindMessages, Messages: messages}
}

// TransactionsResponse wraps a transaction slice in a response frame.
func TransactionsResponse(transactions []models.Transaction) *Response {
	return &Response{V: SchemaVersion, Kind: KindTransactions, Transactions: transactions}
}

// BalanceResponse wraps the balance scalar in a response frame.
func BalanceResponse(balance float64) *Response {
	return &Response{V: SchemaVersion, Kind: KindBalance, Balance: balance}
}
