// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/protocol"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/models"
)

// session is the per-connection protocol state machine. Its only state is the
// currently logged-in username: empty means anonymous. The state is local to
// one connection; the same user may be logged in over several connections at
// once, and none of them invalidates the others.
type session struct {
	codec    *protocol.Codec
	services *service.Services
	logger   *logger.Logger

	// currentUser is the authenticated username, or "" while anonymous.
	currentUser string
}

func newSession(codec *protocol.Codec, services *service.Services, logger *logger.Logger) *session {
	return &session{
		codec:    codec,
		services: services,
		logger:   logger,
	}
}

// run is the request/response loop: block on the next command, dispatch,
// write exactly one reply, repeat. Any read failure — disconnect, malformed
// frame, schema mismatch — ends this session only; it is never reported back
// to the peer.
func (s *session) run(ctx context.Context) {
	s.logger.Info().Msg("session started")

	for {
		var req protocol.Request
		if err := s.codec.ReadRequest(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info().Msg("client disconnected")
			} else {
				s.logger.Debug().Err(err).Msg("session read failed, closing connection")
			}
			return
		}

		resp, exit := s.dispatch(ctx, &req)
		if exit {
			s.logger.Info().Msg("session closed by client")
			return
		}

		if err := s.codec.WriteResponse(resp); err != nil {
			s.logger.Debug().Err(err).Msg("session write failed, closing connection")
			return
		}
	}
}

func (s *session) authenticated() bool {
	return s.currentUser != ""
}

// dispatch routes one decoded request. The boolean result reports the EXIT
// command, which terminates the loop without a reply. Commands requiring an
// authenticated session are rejected before any store access.
func (s *session) dispatch(ctx context.Context, req *protocol.Request) (*protocol.Response, bool) {
	switch req.Cmd {
	case protocol.CmdRegister:
		return s.handleRegister(ctx, req), false

	case protocol.CmdLogin:
		return s.handleLogin(ctx, req), false

	case protocol.CmdLogout:
		// Idempotent even when already anonymous.
		s.currentUser = ""
		return protocol.ResultResponse(models.OK("Logout successful")), false

	case protocol.CmdAddItem:
		if !s.authenticated() {
			return authRequired(), false
		}
		return s.handleAddItem(ctx, req), false

	case protocol.CmdSearchItems:
		return protocol.ItemsResponse(s.services.ListingService.SearchItems(ctx, req.Query)), false

	case protocol.CmdBuyItem:
		if !s.authenticated() {
			return authRequired(), false
		}
		return s.handleBuyItem(ctx, req), false

	case protocol.CmdGetUserItems:
		if !s.authenticated() {
			return authRequired(), false
		}
		return protocol.ItemsResponse(s.services.ListingService.UserItems(ctx, s.currentUser)), false

	case protocol.CmdSendMessage:
		if !s.authenticated() {
			return authRequired(), false
		}
		return s.handleSendMessage(ctx, req), false

	case protocol.CmdGetMessages:
		if !s.authenticated() {
			return authRequired(), false
		}
		return protocol.MessagesResponse(s.services.MessageService.For(ctx, s.currentUser)), false

	case protocol.CmdGetTransactions:
		if !s.authenticated() {
			return authRequired(), false
		}
		return protocol.TransactionsResponse(s.services.MessageService.TransactionsFor(ctx, s.currentUser)), false

	case protocol.CmdGetBalance:
		return s.handleGetBalance(ctx), false

	case protocol.CmdDeleteItem:
		if !s.authenticated() {
			return authRequired(), false
		}
		return s.handleDeleteItem(ctx, req), false

	case protocol.CmdDeleteAccount:
		if !s.authenticated() {
			return authRequired(), false
		}
		return s.handleDeleteAccount(ctx), false

	case protocol.CmdExit:
		return nil, true

	default:
		return protocol.ResultResponse(models.Fail(protocol.CodeUnknownCommand, "Unknown command")), false
	}
}

func (s *session) handleRegister(ctx context.Context, req *protocol.Request) *protocol.Response {
	if err := s.services.AccountService.Register(ctx, req.Username, req.Password); err != nil {
		return protocol.ResultResponse(resultFromError(err))
	}

	return protocol.ResultResponse(models.OK("Registration successful"))
}

func (s *session) handleLogin(ctx context.Context, req *protocol.Request) *protocol.Response {
	user, err := s.services.AccountService.Login(ctx, req.Username, req.Password)
	if err != nil {
		return protocol.ResultResponse(resultFromError(err))
	}

	s.currentUser = user.Username
	s.logger.Info().Str("username", user.Username).Msg("user logged in")

	return protocol.ResultResponse(models.OK("Login successful"))
}

func (s *session) handleAddItem(ctx context.Context, req *protocol.Request) *protocol.Response {
	id, err := s.services.ListingService.AddItem(ctx, s.currentUser, req.Title, req.Description, req.Price)
	if err != nil {
		return protocol.ResultResponse(resultFromError(err))
	}

	return protocol.ResultResponse(models.OKItem("Item added successfully", id))
}

// handleBuyItem rejects self-purchase here, with the logged-in user as buyer,
// before delegating to the payment engine (which has no self-purchase check).
func (s *session) handleBuyItem(ctx context.Context, req *protocol.Request) *protocol.Response {
	item, ok := s.services.ListingService.Item(ctx, req.ItemID)
	if !ok {
		return protocol.ResultResponse(models.Fail(protocol.CodeItemNotFound, "Item not found"))
	}

	if item.Seller == s.currentUser {
		return protocol.ResultResponse(models.Fail(protocol.CodeSelfPurchase, "Cannot buy your own item"))
	}

	if _, err := s.services.PaymentService.ProcessPayment(ctx, s.currentUser, item.Seller, req.ItemID); err != nil {
		return protocol.ResultResponse(resultFromError(err))
	}

	return protocol.ResultResponse(models.OKItem("Payment processed successfully", req.ItemID))
}

func (s *session) handleSendMessage(ctx context.Context, req *protocol.Request) *protocol.Response {
	if err := s.services.MessageService.Send(ctx, s.currentUser, req.Recipient, req.Content, req.ItemID); err != nil {
		return protocol.ResultResponse(resultFromError(err))
	}

	return protocol.ResultResponse(models.OK("Message sent successfully"))
}

// handleGetBalance keeps the reply type uniform: an anonymous session — or an
// authenticated one whose user was deleted through another connection — gets
// the -1 sentinel rather than an error.
func (s *session) handleGetBalance(ctx context.Context) *protocol.Response {
	if !s.authenticated() {
		return protocol.BalanceResponse(-1)
	}

	balance, ok := s.services.AccountService.Balance(ctx, s.currentUser)
	if !ok {
		return protocol.BalanceResponse(-1)
	}

	return protocol.BalanceResponse(balance)
}

func (s *session) handleDeleteItem(ctx context.Context, req *protocol.Request) *protocol.Response {
	if err := s.services.ListingService.DeleteItem(ctx, s.currentUser, req.ItemID); err != nil {
		return protocol.ResultResponse(resultFromError(err))
	}

	return protocol.ResultResponse(models.OK("Item deleted successfully"))
}

func (s *session) handleDeleteAccount(ctx context.Context) *protocol.Response {
	if err := s.services.AccountService.DeleteAccount(ctx, s.currentUser); err != nil {
		return protocol.ResultResponse(resultFromError(err))
	}

	s.currentUser = ""

	return protocol.ResultResponse(models.OK("Account deleted successfully"))
}

func authRequired() *protocol.Response {
	return protocol.ResultResponse(models.Fail(protocol.CodeAuthRequired, "Not logged in"))
}
