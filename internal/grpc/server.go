package igrpc

import (
	"context"
	"errors"
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"chat-service/internal/repositories"
	"chat-service/internal/services"
	chatpb "chat-service/proto/chat"
)

// ChatGRPCServer exposes contact-graph lookups to sibling services.
type ChatGRPCServer struct {
	chatpb.UnimplementedChatInternalServer
	contacts repositories.ContactRepository
	users    *services.UserService
}

func NewChatGRPCServer(contacts repositories.ContactRepository, users *services.UserService) *ChatGRPCServer {
	return &ChatGRPCServer{contacts: contacts, users: users}
}

func StartGRPCServer(ctx context.Context, addr string, contacts repositories.ContactRepository, users *services.UserService) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := grpc.NewServer()
	chatpb.RegisterChatInternalServer(srv, NewChatGRPCServer(contacts, users))

	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	return srv, nil
}

func (s *ChatGRPCServer) AreContacts(ctx context.Context, req *chatpb.AreContactsRequest) (*chatpb.AreContactsResponse, error) {
	contacts, err := s.contacts.AreContacts(ctx, req.GetUserId(), req.GetContactId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to check contact edge: %v", err)
	}
	return &chatpb.AreContactsResponse{AreContacts: contacts}, nil
}

func (s *ChatGRPCServer) GetUser(ctx context.Context, req *chatpb.GetUserRequest) (*chatpb.GetUserResponse, error) {
	user, err := s.users.GetUserByID(ctx, req.GetUserId())
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return nil, status.Errorf(codes.NotFound, "user %d not found", req.GetUserId())
		}
		return nil, status.Errorf(codes.Internal, "failed to fetch user: %v", err)
	}
	return &chatpb.GetUserResponse{Id: user.ID, DisplayName: user.DisplayName}, nil
}
