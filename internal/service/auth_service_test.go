package service_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"aimaturity/internal/config"
	"aimaturity/internal/service"
)

func TestAuthService(t *testing.T) {
	Convey("Given an auth service with known credentials", t, func() {
		cfg := config.New()
		cfg.AdminUsername = "admin"
		cfg.AdminPassword = "secret"
		cfg.JWTSecret = "test-signing-key"
		svc := service.NewAuthService(cfg)

		Convey("When logging in with valid credentials", func() {
			resp, err := svc.Login("admin", "secret")

			Convey("Then a token and admin id are issued", func() {
				So(err, ShouldBeNil)
				So(resp, ShouldNotBeNil)
				So(resp.Token, ShouldNotBeEmpty)
				So(resp.AdminID, ShouldStartWith, "admin_")
			})

			Convey("Then the issued token validates", func() {
				So(err, ShouldBeNil)
				claims, verr := svc.ValidateToken(resp.Token)
				So(verr, ShouldBeNil)
				So(claims.AdminID, ShouldEqual, resp.AdminID)
			})
		})

		Convey("When logging in with a wrong password", func() {
			resp, err := svc.Login("admin", "nope")

			Convey("Then it is rejected", func() {
				So(err, ShouldEqual, service.ErrInvalidCredentials)
				So(resp, ShouldBeNil)
			})
		})

		Convey("When logging in with an unknown username", func() {
			resp, err := svc.Login("root", "secret")

			Convey("Then it is rejected", func() {
				So(err, ShouldEqual, service.ErrInvalidCredentials)
				So(resp, ShouldBeNil)
			})
		})

		Convey("When validating garbage", func() {
			claims, err := svc.ValidateToken("not.a.token")

			Convey("Then it is rejected", func() {
				So(err, ShouldEqual, service.ErrInvalidToken)
				So(claims, ShouldBeNil)
			})
		})

		Convey("When validating a token signed with another key", func() {
			other := config.New()
			other.AdminUsername = "admin"
			other.AdminPassword = "secret"
			other.JWTSecret = "different-signing-key"
			resp, err := service.NewAuthService(other).Login("admin", "secret")
			So(err, ShouldBeNil)

			claims, err := svc.ValidateToken(resp.Token)

			Convey("Then it is rejected", func() {
				So(err, ShouldEqual, service.ErrInvalidToken)
				So(claims, ShouldBeNil)
			})
		})
	})
}
