package main

func reap() {}
