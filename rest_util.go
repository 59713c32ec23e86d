package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	. "github.com/ttpr0/go-pathviz/util"
	"golang.org/x/exp/slog"
)

func ReadRequestBody[T any](r *http.Request) (T, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error(err.Error())
		var t T
		return t, err
	}
	var req T
	err = json.Unmarshal(data, &req)
	if err != nil {
		slog.Error(err.Error())
		var t T
		return t, err
	}
	return req, nil
}

func WriteResponse[T any](w http.ResponseWriter, resp T, status int) {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

type Result struct {
	result any
	status int
}

func OK[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusOK,
	}
}

func BadRequest[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusBadRequest,
	}
}

func NotFound[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusNotFound,
	}
}

func MapPost[F any](app *mux.Router, path string, handler func(F) Result) {
	app.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		body, err := ReadRequestBody[F](r)
		if err != nil {
			slog.Error("failed POST " + err.Error())
			WriteResponse(w, NewErrorResponse(path, err.Error()), http.StatusBadRequest)
			return
		}
		res := handler(body)
		if res.status != http.StatusOK {
			slog.Error("failed POST " + path)
			WriteResponse(w, NewErrorResponse(path, res.result), res.status)
		} else {
			WriteResponse(w, res.result, res.status)
		}
	}).Methods(http.MethodPost)
}

func MapGet[F any](app *mux.Router, path string, handler func(F) Result) {
	var val F
	typ := reflect.TypeOf(val)
	num_field := typ.NumField()
	fields := NewList[Triple[int, string, reflect.Kind]](num_field)
	for i := 0; i < num_field; i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("json")
		if tag == "" {
			continue
		}
		switch field.Type.Kind() {
		case reflect.Bool:
			fields.Add(MakeTriple(i, tag, reflect.Bool))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			fields.Add(MakeTriple(i, tag, reflect.Int))
		case reflect.Float32, reflect.Float64:
			fields.Add(MakeTriple(i, tag, reflect.Float64))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			fields.Add(MakeTriple(i, tag, reflect.Uint))
		case reflect.String:
			fields.Add(MakeTriple(i, tag, reflect.String))
		}
	}
	app.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		t := reflect.New(typ).Elem()
		for _, field := range fields {
			index := field.A
			name := field.B
			typ := field.C
			value := query.Get(name)
			if value == "" {
				continue
			}
			f := t.Field(index)
			var err error
			switch typ {
			case reflect.Bool:
				var v bool
				v, err = strconv.ParseBool(value)
				f.SetBool(v)
			case reflect.Int:
				var v int64
				v, err = strconv.ParseInt(value, 10, 64)
				f.SetInt(v)
			case reflect.Uint:
				var v uint64
				v, err = strconv.ParseUint(value, 10, 64)
				f.SetUint(v)
			case reflect.Float64:
				var v float64
				v, err = strconv.ParseFloat(value, 64)
				f.SetFloat(v)
			case reflect.String:
				f.SetString(value)
			}
			if err != nil {
				msg := fmt.Sprintf("invalid parameter %s: %v", name, err)
				slog.Error("failed GET " + msg)
				WriteResponse(w, NewErrorResponse(path, msg), http.StatusBadRequest)
				return
			}
		}
		value := t.Interface().(F)
		res := handler(value)
		if res.status != http.StatusOK {
			slog.Error("failed GET " + path)
			WriteResponse(w, NewErrorResponse(path, res.result), res.status)
		} else {
			WriteResponse(w, res.result, res.status)
		}
	}).Methods(http.MethodGet)
}

//**********************************************************
// middleware
//**********************************************************

type _StatusWriter struct {
	http.ResponseWriter
	status int
}

func (self *_StatusWriter) WriteHeader(code int) {
	self.status = code
	self.ResponseWriter.WriteHeader(code)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &_StatusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		slog.Info(fmt.Sprintf("%s %s %d %v", r.Method, r.URL.Path, sw.status, time.Since(start)))
	})
}

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error(fmt.Sprintf("panic recovered: %v\n%s", err, debug.Stack()))
				WriteResponse(w, NewErrorResponse(r.URL.Path, "internal server error"), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
