package rvdbacc

func ignorePipe() {}
